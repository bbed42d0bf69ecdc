// Package config provides configuration management for the speclint CLI.
//
// # Configuration File
//
// The configuration file is named speclint.yaml and is searched for in the
// current directory and then in ~/.config/speclint/. It uses the following
// structure:
//
//	version: 1
//	format: text          # text or json
//	workers: 4            # nodes evaluated concurrently
//	disabled_rules:
//	  - operation-tags-defined
//
// Every key can be overridden through the environment with the SPECLINT_
// prefix, for example SPECLINT_FORMAT=json.
//
// # Loading Configuration
//
// Call [Init] once, then [Load] with an explicit path or "" to search the
// default locations:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.Wrap(err, "loading config")
//	}
//
// # Validation
//
// Loaded configurations are validated automatically. [Validate] can also be
// called directly and returns every problem found:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
package config
