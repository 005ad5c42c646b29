package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/njchilds90/cleanhtml"
)

// policyFile is the on-disk policy schema. The replace keys fully
// supersede the built-in defaults; the additional_* keys extend them.
type policyFile struct {
	Tags       []string `mapstructure:"tags"`
	Attributes []string `mapstructure:"attributes"`
	Scriptable []string `mapstructure:"scriptable"`

	AdditionalTags       []string `mapstructure:"additional_tags"`
	AdditionalAttributes []string `mapstructure:"additional_attributes"`
	AdditionalScriptable []string `mapstructure:"additional_scriptable"`
}

func loadPolicyFile(path string) (*cleanhtml.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var pf policyFile
	if err := v.Unmarshal(&pf); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	return &cleanhtml.Config{
		ReplacementTags:       pf.Tags,
		ReplacementAttributes: pf.Attributes,
		ReplacementScriptable: pf.Scriptable,
		AdditionalTags:        pf.AdditionalTags,
		AdditionalAttributes:  pf.AdditionalAttributes,
		AdditionalScriptable:  pf.AdditionalScriptable,
	}, nil
}
