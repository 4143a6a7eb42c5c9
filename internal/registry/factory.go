package registry

//
// Factory for constructing operation requests and results.
//

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// Factory allows to construct the request and the result of an operation.
type Factory struct {
	// metadata describes the service owning the operation.
	metadata *awsapi.ServiceMetadata

	// newRequest creates an empty request.
	newRequest func() awsapi.Request

	// newResult creates an empty result.
	newResult func() awsapi.Result

	// operation is the AWS operation name (e.g., "GetDeploymentConfig").
	operation string

	// service is the name of the package implementing the service (e.g., "codedeploy").
	service string
}

// Name returns the "service.Operation" name of the operation.
func (f *Factory) Name() string {
	return f.service + "." + f.operation
}

// Service returns the service name.
func (f *Factory) Service() string {
	return f.service
}

// Operation returns the AWS operation name.
func (f *Factory) Operation() string {
	return f.operation
}

// Metadata returns the metadata of the service.
func (f *Factory) Metadata() *awsapi.ServiceMetadata {
	return f.metadata
}

// NewRequest returns a new empty request.
func (f *Factory) NewRequest() awsapi.Request {
	return f.newRequest()
}

// NewResult returns a new empty result.
func (f *Factory) NewResult() awsapi.Result {
	return f.newResult()
}

// NewClient creates a client core for the service of this operation.
func (f *Factory) NewClient(config awsclient.Config) *awsclient.Client {
	return awsclient.New(f.metadata, config)
}

// Invoke calls the operation using clnt, which must have been created
// using [Factory.NewClient] or for the same service.
func (f *Factory) Invoke(ctx context.Context, clnt *awsclient.Client, req awsapi.Request) (awsapi.Result, error) {
	res := f.newResult()
	if err := clnt.Invoke(ctx, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

var (
	// ErrRequestIsNotAStructPointer indicates we expected a pointer to struct.
	ErrRequestIsNotAStructPointer = errors.New("request is not a struct pointer")

	// ErrNoSuchField indicates there's no field with the given name.
	ErrNoSuchField = errors.New("no such field")

	// ErrCannotSetIntegerField means SetFieldAny couldn't set an integer field.
	ErrCannotSetIntegerField = errors.New("cannot set integer field")

	// ErrCannotSetFloatField means SetFieldAny couldn't set a floating point field.
	ErrCannotSetFloatField = errors.New("cannot set float field")

	// ErrInvalidStringRepresentationOfBool indicates the string you passed
	// to SetFieldAny is not a valid string representation of a bool.
	ErrInvalidStringRepresentationOfBool = errors.New("invalid string representation of bool")

	// ErrCannotSetBoolField means SetFieldAny couldn't set a bool field.
	ErrCannotSetBoolField = errors.New("cannot set bool field")

	// ErrCannotSetStringField means SetFieldAny couldn't set a string field.
	ErrCannotSetStringField = errors.New("cannot set string field")

	// ErrCannotSetTimeField means SetFieldAny couldn't set a timestamp field.
	ErrCannotSetTimeField = errors.New("cannot set time field")

	// ErrUnsupportedFieldType means we don't know how to set the field
	// from the value passed to SetFieldAny.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// FieldInfo describes a request field.
type FieldInfo struct {
	// Type is the type of the value wrapped by the optional field.
	Type string
}

// Fields returns the optional fields of the request, including the ones
// promoted from embedded structs.
func (f *Factory) Fields() (map[string]FieldInfo, error) {
	structinfo, err := structof(f.newRequest())
	if err != nil {
		return nil, err
	}
	result := make(map[string]FieldInfo)
	for _, field := range reflect.VisibleFields(structinfo.Type()) {
		if field.Anonymous || !field.IsExported() {
			continue
		}
		setter, ok := setterOf(structinfo.FieldByIndex(field.Index))
		if !ok {
			continue
		}
		result[field.Name] = FieldInfo{Type: setter.Type().In(0).String()}
	}
	return result, nil
}

// FieldNames returns the sorted names of the fields returned by [Factory.Fields].
func (f *Factory) FieldNames() ([]string, error) {
	fields, err := f.Fields()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SetFieldAny sets the optional field of req named key given any value. Strings
// are parsed according to the type of the field, which allows to fill requests
// from the command line.
func (f *Factory) SetFieldAny(req awsapi.Request, key string, value any) error {
	structinfo, err := structof(req)
	if err != nil {
		return err
	}
	field := structinfo.FieldByName(key)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("%w: %s", ErrNoSuchField, key)
	}
	setter, ok := setterOf(field)
	if !ok {
		return fmt.Errorf("%w: %s is not optional", ErrUnsupportedFieldType, key)
	}
	arg := reflect.New(setter.Type().In(0)).Elem()
	if err := setValue(arg, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	setter.Call([]reflect.Value{arg})
	return nil
}

// SetFieldsAny calls SetFieldAny for each entry inside fields.
func (f *Factory) SetFieldsAny(req awsapi.Request, fields map[string]any) error {
	for key, value := range fields {
		if err := f.SetFieldAny(req, key, value); err != nil {
			return err
		}
	}
	return nil
}

// structof returns the struct req points to.
func structof(req awsapi.Request) (reflect.Value, error) {
	// See https://stackoverflow.com/a/6396678/4354461
	ptrinfo := reflect.ValueOf(req)
	if ptrinfo.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("%w but a %T", ErrRequestIsNotAStructPointer, req)
	}
	structinfo := ptrinfo.Elem()
	if structinfo.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w but a %T", ErrRequestIsNotAStructPointer, req)
	}
	return structinfo, nil
}

// setterOf returns the Set method of an optional field.
func setterOf(field reflect.Value) (reflect.Value, bool) {
	if !field.CanAddr() {
		return reflect.Value{}, false
	}
	setter := field.Addr().MethodByName("Set")
	if !setter.IsValid() || setter.Type().NumIn() != 1 || setter.Type().NumOut() != 0 {
		return reflect.Value{}, false
	}
	return setter, true
}

var timeType = reflect.TypeOf(time.Time{})

// setValue converts value to the type of dst and stores it.
func setValue(dst reflect.Value, value any) error {
	if dst.Type() == timeType {
		return setTime(dst, value)
	}
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, value)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, value)
	case reflect.Bool:
		return setBool(dst, value)
	case reflect.String:
		return setString(dst, value)
	case reflect.Slice:
		return setSlice(dst, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFieldType, dst.Type())
	}
}

// setBool sets a bool value.
func setBool(dst reflect.Value, value any) error {
	switch v := value.(type) {
	case bool:
		dst.SetBool(v)
		return nil
	case string:
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: %s", ErrInvalidStringRepresentationOfBool, v)
		}
		dst.SetBool(v == "true")
		return nil
	default:
		return fmt.Errorf("%w from a value of type %T", ErrCannotSetBoolField, value)
	}
}

// With JSON we're limited by the 52 bits in the mantissa
const (
	jsonMaxInteger = 1<<53 - 1
	jsonMinInteger = -1<<53 + 1
)

// setInt sets an integer value of any size.
func setInt(dst reflect.Value, value any) error {
	var number int64
	switch v := value.(type) {
	case int64:
		number = v
	case int32:
		number = int64(v)
	case int16:
		number = int64(v)
	case int8:
		number = int64(v)
	case int:
		number = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %s", ErrCannotSetIntegerField, err.Error())
		}
		number = parsed
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w from: %v", ErrCannotSetIntegerField, value)
		}
		if math.Trunc(v) != v {
			return fmt.Errorf("%w from: %v", ErrCannotSetIntegerField, value)
		}
		if v > jsonMaxInteger || v < jsonMinInteger {
			return fmt.Errorf("%w from: %v", ErrCannotSetIntegerField, value)
		}
		number = int64(v)
	default:
		return fmt.Errorf("%w from a value of type %T", ErrCannotSetIntegerField, value)
	}
	if dst.OverflowInt(number) {
		return fmt.Errorf("%w: %d overflows %s", ErrCannotSetIntegerField, number, dst.Type())
	}
	dst.SetInt(number)
	return nil
}

// setFloat sets a floating point value.
func setFloat(dst reflect.Value, value any) error {
	switch v := value.(type) {
	case float64:
		dst.SetFloat(v)
		return nil
	case string:
		number, err := strconv.ParseFloat(v, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %s", ErrCannotSetFloatField, err.Error())
		}
		dst.SetFloat(number)
		return nil
	default:
		return fmt.Errorf("%w from a value of type %T", ErrCannotSetFloatField, value)
	}
}

// setString sets a string value, including string-based enums.
func setString(dst reflect.Value, value any) error {
	switch v := value.(type) {
	case string:
		dst.SetString(v)
		return nil
	default:
		return fmt.Errorf("%w from a value of type %T", ErrCannotSetStringField, value)
	}
}

// setTime sets a timestamp from a time.Time or an RFC3339 string.
func setTime(dst reflect.Value, value any) error {
	switch v := value.(type) {
	case time.Time:
		dst.Set(reflect.ValueOf(v))
		return nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrCannotSetTimeField, err.Error())
		}
		dst.Set(reflect.ValueOf(t))
		return nil
	default:
		return fmt.Errorf("%w from a value of type %T", ErrCannotSetTimeField, value)
	}
}

// setSlice sets a blob from a string, or a list from a slice or from
// a comma separated string.
func setSlice(dst reflect.Value, value any) error {
	if dst.Type().Elem().Kind() == reflect.Uint8 {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: blob from a value of type %T", ErrUnsupportedFieldType, value)
		}
		dst.SetBytes([]byte(v))
		return nil
	}
	var items []any
	switch v := value.(type) {
	case string:
		for _, entry := range strings.Split(v, ",") {
			items = append(items, entry)
		}
	case []string:
		for _, entry := range v {
			items = append(items, entry)
		}
	case []any:
		items = v
	default:
		return fmt.Errorf("%w: list from a value of type %T", ErrUnsupportedFieldType, value)
	}
	list := reflect.MakeSlice(dst.Type(), len(items), len(items))
	for idx, item := range items {
		if err := setValue(list.Index(idx), item); err != nil {
			return err
		}
	}
	dst.Set(list)
	return nil
}

// CanonicalizeOperationName allows code to provide operation names in a
// more flexible way. Names are case insensitive and may use the dashed
// spelling of the AWS CLI (e.g., "codedeploy.get-deployment-config").
func CanonicalizeOperationName(name string) string {
	return strings.NewReplacer("-", "", "_", "", ":", ".", "/", ".").Replace(strings.ToLower(name))
}

// ErrNoSuchOperation indicates a given operation does not exist.
var ErrNoSuchOperation = errors.New("no such operation")

// NewFactory returns the factory of the operation with the given name.
func NewFactory(name string) (*Factory, error) {
	factory := AllOperations[CanonicalizeOperationName(name)]
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchOperation, name)
	}
	return factory, nil
}
