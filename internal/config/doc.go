// Package config loads dataviewer.json project configuration.
//
// # Configuration File Structure
//
//	{
//	  "output":   {"dir": "out", "pretty": false, "inlineCss": false},
//	  "css":      {"version": "v3.4.16"},
//	  "preview":  {"host": "localhost", "port": 4000, "reload": true},
//	  "s3":       {"region": "eu-west-1", "endpoint": "", "pathStyle": false},
//	  "tailwind": {"version": "v3.4.16", "binDir": ""},
//	  "log":      {"level": "info"}
//	}
//
// Every field is optional. Missing files are not an error for Discover,
// which falls back to New().
//
// # Usage
//
//	cfg, err := config.Discover(flagPath, ".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
