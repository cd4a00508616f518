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
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/lunarch/selene/graphql/ast"
)

// The "type of internal value" for each built-in scalar is listed as follows,
//
//	+--------------+---------------------------------+
//	| GraphQL Type | Go Type ("internal value type") |
//	+--------------+---------------------------------+
//	| Int          | int                             |
//	| Float        | float64                         |
//	| String       | string                          |
//	| Boolean      | bool                            |
//	| ID           | string                          |
//	+--------------+---------------------------------+
//
// That is, the underlying type behind the interface{} returned by CoerceVariableValue and
// CoerceArgumentValue is fixed to the one given in the table. When you receive an Int argument
// you can expect an "int", not an int32 or anything else.

//===----------------------------------------------------------------------------------------====//
// Int
//===----------------------------------------------------------------------------------------====//
// The Int scalar type represents a signed 32-bit numeric non-fractional value.
//
// Reference: https://spec.graphql.org/October2021/#sec-Int

// intCoercer implements result and input coercion for the Int type.
type intCoercer struct{}

var (
	_ ScalarResultCoercer = intCoercer{}
	_ ScalarInputCoercer  = intCoercer{}
)

func intOutOfRangeError(value interface{}) error {
	return NewCoercionError("Int cannot represent value outside 32-bit signed range: %v", value)
}

// CoerceResultValue implements ScalarResultCoercer. Like graphql-js, it accepts any numeric-like
// result value that holds an integer in the 32-bit range.
func (coercer intCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil

	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return v, nil

	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil

	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil

	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil

	case uint:
		if v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil
	case uint32:
		if v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil

	case float32:
		return coercer.coerceFloat(float64(v))
	case float64:
		return coercer.coerceFloat(v)

	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, NewCoercionError("Int cannot represent non-integer value: %q", v)
		}
		return coercer.coerceFloat(f)
	}

	// Maybe the value is of some type that aliases one of the above.
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return coercer.CoerceResultValue(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return coercer.CoerceResultValue(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return coercer.CoerceResultValue(v.Uint())
	case reflect.Float32, reflect.Float64:
		return coercer.CoerceResultValue(v.Float())
	case reflect.String:
		return coercer.CoerceResultValue(v.String())
	}

	return nil, NewCoercionError("Int cannot represent non-integer value: %v", value)
}

func (coercer intCoercer) coerceFloat(f float64) (interface{}, error) {
	if f != math.Trunc(f) {
		return nil, NewCoercionError("Int cannot represent non-integer value: %v", f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, intOutOfRangeError(f)
	}
	return int(f), nil
}

// CoerceVariableValue implements ScalarInputCoercer. Input coercion is strict: only integer
// values are accepted, without the type coercions the result side performs.
func (coercer intCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return v, nil

	case int32:
		return int(v), nil

	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil

	case float64:
		// JSON numbers decode as float64.
		if v != math.Trunc(v) {
			return nil, NewCoercionError("Int cannot represent non-integer value: %v", v)
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, intOutOfRangeError(v)
		}
		return int(v), nil
	}

	return nil, NewCoercionError("Int cannot represent non-integer value: %v", value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer intCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.IntValue); ok {
		return int(v.Value), nil
	}
	return nil, NewCoercionError("Int cannot represent non-integer value: %v", value.Interface())
}

// Int is the built-in Int scalar type.
var Int = MustNewScalar(ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: intCoercer{},
	InputCoercer:  intCoercer{},
})

//===----------------------------------------------------------------------------------------====//
// Float
//===----------------------------------------------------------------------------------------====//
// The Float scalar type represents signed double-precision finite values as specified by IEEE
// 754. Note that the document parser has no float literals; a Float argument is populated from an
// integer literal or a variable.
//
// Reference: https://spec.graphql.org/October2021/#sec-Float

// floatCoercer implements result and input coercion for the Float type.
type floatCoercer struct{}

var (
	_ ScalarResultCoercer = floatCoercer{}
	_ ScalarInputCoercer  = floatCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (coercer floatCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil

	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil

	case float32:
		return float64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewCoercionError("Float cannot represent non-finite value: %v", v)
		}
		return v, nil

	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, NewCoercionError("Float cannot represent non-numeric value: %q", v)
		}
		return f, nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return coercer.CoerceResultValue(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return coercer.CoerceResultValue(v.Float())
	case reflect.String:
		return coercer.CoerceResultValue(v.String())
	}

	return nil, NewCoercionError("Float cannot represent non-numeric value: %v", value)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer floatCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewCoercionError("Float cannot represent non-finite value: %v", v)
		}
		return v, nil
	}
	return nil, NewCoercionError("Float cannot represent non-numeric value: %v", value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer floatCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.IntValue); ok {
		return float64(v.Value), nil
	}
	return nil, NewCoercionError("Float cannot represent non-numeric value: %v", value.Interface())
}

// Float is the built-in Float scalar type.
var Float = MustNewScalar(ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values " +
		"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: floatCoercer{},
	InputCoercer:  floatCoercer{},
})

//===----------------------------------------------------------------------------------------====//
// String
//===----------------------------------------------------------------------------------------====//
// The String scalar type represents textual data, represented as UTF-8 character sequences.
//
// Reference: https://spec.graphql.org/October2021/#sec-String

// stringCoercer implements result and input coercion for the String type.
type stringCoercer struct{}

var (
	_ ScalarResultCoercer = stringCoercer{}
	_ ScalarInputCoercer  = stringCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (coercer stringCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	}

	return nil, NewCoercionError("String cannot represent value: %v", value)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer stringCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, NewCoercionError("String cannot represent a non string value: %v", value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer stringCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.StringValue); ok {
		return v.Value, nil
	}
	return nil, NewCoercionError("String cannot represent a non string value: %v", value.Interface())
}

// String is the built-in String scalar type.
var String = MustNewScalar(ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to represent free-form " +
		"human-readable text.",
	ResultCoercer: stringCoercer{},
	InputCoercer:  stringCoercer{},
})

//===----------------------------------------------------------------------------------------====//
// Boolean
//===----------------------------------------------------------------------------------------====//
// The Boolean scalar type represents true or false.
//
// Reference: https://spec.graphql.org/October2021/#sec-Boolean

// booleanCoercer implements result and input coercion for the Boolean type.
type booleanCoercer struct{}

var (
	_ ScalarResultCoercer = booleanCoercer{}
	_ ScalarInputCoercer  = booleanCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (coercer booleanCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	}

	return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer booleanCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer booleanCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	if v, ok := value.(ast.BooleanValue); ok {
		return v.Value, nil
	}
	return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value.Interface())
}

// Boolean is the built-in Boolean scalar type.
var Boolean = MustNewScalar(ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: booleanCoercer{},
	InputCoercer:  booleanCoercer{},
})

//===----------------------------------------------------------------------------------------====//
// ID
//===----------------------------------------------------------------------------------------====//
// The ID scalar type represents a unique identifier. It is serialized in the same way as a
// String, but accepts both string and integer input.
//
// Reference: https://spec.graphql.org/October2021/#sec-ID

// idCoercer implements result and input coercion for the ID type.
type idCoercer struct{}

var (
	_ ScalarResultCoercer = idCoercer{}
	_ ScalarInputCoercer  = idCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (coercer idCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}

	return nil, NewCoercionError("ID cannot represent value: %v", value)
}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer idCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, NewCoercionError("ID cannot represent value: %v", value)
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer idCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	switch v := value.(type) {
	case ast.StringValue:
		return v.Value, nil
	case ast.IntValue:
		return strconv.FormatInt(int64(v.Value), 10), nil
	}
	return nil, NewCoercionError("ID cannot represent value: %v", value.Interface())
}

// ID is the built-in ID scalar type.
var ID = MustNewScalar(ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; however, " +
		"it is not intended to be human-readable.",
	ResultCoercer: idCoercer{},
	InputCoercer:  idCoercer{},
})
