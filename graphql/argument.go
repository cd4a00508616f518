/**
 * Copyright (c) 2024, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"github.com/lunarch/selene/graphql/ast"
)

// ArgumentConfig provides the definition of an argument when defining a field.
type ArgumentConfig struct {
	// Name of the argument
	Name string

	// Description of the argument
	Description string

	// Type of value that can be given to the argument
	Type TypeRef

	// DefaultValue is applied when the argument is omitted in a query; nil when the argument has no
	// default. The value is an input-value literal so introspection can print it back in GraphQL
	// notation.
	DefaultValue ast.Value
}

// Argument is the finalized definition of an argument taken by a field.
type Argument struct {
	config ArgumentConfig
}

// Name of the argument.
func (arg *Argument) Name() string {
	return arg.config.Name
}

// Description of the argument.
func (arg *Argument) Description() string {
	return arg.config.Description
}

// Type of value that can be given to the argument.
func (arg *Argument) Type() TypeRef {
	return arg.config.Type
}

// HasDefaultValue returns true if a default value was specified.
func (arg *Argument) HasDefaultValue() bool {
	return arg.config.DefaultValue != nil
}

// DefaultValue returns the default value literal, or nil when the argument has none.
func (arg *Argument) DefaultValue() ast.Value {
	return arg.config.DefaultValue
}

// buildArguments finalizes a list of argument configurations, rejecting duplicate names.
func buildArguments(subject string, configs []ArgumentConfig) ([]*Argument, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	args := make([]*Argument, len(configs))
	seen := make(map[string]bool, len(configs))
	for i, config := range configs {
		if len(config.Name) == 0 {
			return nil, NewError("Must provide name for argument of " + subject + ".")
		}
		if config.Type == nil {
			return nil, NewError(`Must provide type for argument "` + config.Name + `" of ` + subject + ".")
		}
		if seen[config.Name] {
			return nil, NewError(`Duplicate argument "` + config.Name + `" on ` + subject + ".")
		}
		seen[config.Name] = true
		args[i] = &Argument{config: config}
	}
	return args, nil
}
