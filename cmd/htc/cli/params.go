// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagBinder lets a params struct register custom flags beyond what the
// reflection-based binding supports.
type FlagBinder interface {
	BindFlags(flagSet *pflag.FlagSet)
}

// FlagsFromParams builds a *pflag.FlagSet from a params struct pointer.
// Fields are declared with struct tags:
//
//	type loginParams struct {
//	    Email        string `flag:"email,e" desc:"account email address"`
//	    PasswordFile string `flag:"password-file" desc:"read password from file"`
//	    Timeout      time.Duration `flag:"timeout" desc:"request timeout" default:"15s"`
//	}
//
// The flag tag is "name" or "name,shorthand". Supported field types are
// string, bool, int, int64, time.Duration, and []string. Panics on a
// malformed params struct; that is a programming error, not user input.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)

	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("FlagsFromParams(%s): params must be a pointer to struct, got %T", name, params))
	}
	structValue := value.Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tag := field.Tag.Get("flag")
		if tag == "" {
			continue
		}

		flagName, shorthand := splitFlagTag(tag)
		description := field.Tag.Get("desc")
		defaultText := field.Tag.Get("default")
		fieldValue := structValue.Field(i)

		switch pointer := fieldValue.Addr().Interface().(type) {
		case *string:
			flagSet.StringVarP(pointer, flagName, shorthand, defaultText, description)
		case *bool:
			defaultBool := defaultText == "true"
			flagSet.BoolVarP(pointer, flagName, shorthand, defaultBool, description)
		case *int:
			defaultInt := 0
			if defaultText != "" {
				parsed, err := strconv.Atoi(defaultText)
				if err != nil {
					panic(fmt.Sprintf("FlagsFromParams(%s): bad int default %q for --%s", name, defaultText, flagName))
				}
				defaultInt = parsed
			}
			flagSet.IntVarP(pointer, flagName, shorthand, defaultInt, description)
		case *int64:
			defaultInt := int64(0)
			if defaultText != "" {
				parsed, err := strconv.ParseInt(defaultText, 10, 64)
				if err != nil {
					panic(fmt.Sprintf("FlagsFromParams(%s): bad int64 default %q for --%s", name, defaultText, flagName))
				}
				defaultInt = parsed
			}
			flagSet.Int64VarP(pointer, flagName, shorthand, defaultInt, description)
		case *time.Duration:
			defaultDuration := time.Duration(0)
			if defaultText != "" {
				parsed, err := time.ParseDuration(defaultText)
				if err != nil {
					panic(fmt.Sprintf("FlagsFromParams(%s): bad duration default %q for --%s", name, defaultText, flagName))
				}
				defaultDuration = parsed
			}
			flagSet.DurationVarP(pointer, flagName, shorthand, defaultDuration, description)
		case *[]string:
			var defaultSlice []string
			if defaultText != "" {
				defaultSlice = strings.Split(defaultText, ",")
			}
			flagSet.StringSliceVarP(pointer, flagName, shorthand, defaultSlice, description)
		default:
			panic(fmt.Sprintf("FlagsFromParams(%s): unsupported field type %s for --%s", name, field.Type, flagName))
		}
	}

	if binder, ok := params.(FlagBinder); ok {
		binder.BindFlags(flagSet)
	}

	return flagSet
}

// splitFlagTag parses a "name" or "name,shorthand" flag tag.
func splitFlagTag(tag string) (name, shorthand string) {
	if index := strings.IndexByte(tag, ','); index >= 0 {
		return tag[:index], tag[index+1:]
	}
	return tag, ""
}
