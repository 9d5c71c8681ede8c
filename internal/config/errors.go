package config

import "fmt"

// ConfigurationError reports a missing credential.
type ConfigurationError struct {
	Var string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not found. Set it before running:\n"+
		"  export %s=\"PASTE_YOUR_KEY_HERE\"\n"+
		"or in PowerShell:\n"+
		"  $env:%s=\"PASTE_YOUR_KEY_HERE\"\n"+
		"or add %s=... to a .env file in the working directory",
		e.Var, e.Var, e.Var, e.Var)
}
