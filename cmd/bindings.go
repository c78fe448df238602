package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/viant/autofill/config"
)

// Bindings returns producers available to config files loaded by the CLI
func Bindings() config.Bindings {
	return config.Bindings{
		"now": func() interface{} {
			return time.Now()
		},
		"env": func() interface{} {
			result := map[string]interface{}{}
			for _, pair := range os.Environ() {
				if index := strings.Index(pair, "="); index > 0 {
					result[pair[:index]] = pair[index+1:]
				}
			}
			return result
		},
		"hostname": func() (interface{}, error) {
			return os.Hostname()
		},
	}
}
