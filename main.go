package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/tripcard/cmd"
)

// loadSiteParams reads config.yaml as free-form layout params. A missing
// file yields no params.
func loadSiteParams(filename string) (map[string]interface{}, error) {
	yamlFile, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	var params map[string]interface{}
	if err := yaml.Unmarshal(yamlFile, &params); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", filename, err)
	}
	return params, nil
}

func main() {
	params, err := loadSiteParams("config.yaml")
	if err != nil {
		log.Fatalf("Error loading site configuration: %v", err)
	}
	cmd.Execute(params)
}
