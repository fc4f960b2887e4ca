package api

import "github.com/getkin/kin-openapi/openapi3"

const greeting = "Hello world! ABCDEFGHIJKLMNOPQRSTUVWXYZ."

// HelloMessage is the body of /helloworld.
type HelloMessage struct {
	Message string `json:"message"`
}

// ComplexRecord is a single structured entry of /complexdata.
type ComplexRecord struct {
	MyString string `json:"my_string"`
	MyBool   bool   `json:"my_bool"`
	MyInt    int    `json:"my_int"`
}

// ComplexData groups records. /complexdata returns a list of them.
type ComplexData struct {
	Data []ComplexRecord `json:"data"`
}

var (
	helloPayload   = HelloMessage{Message: greeting}
	complexPayload = []ComplexData{{
		Data: []ComplexRecord{{MyString: "my complex data", MyBool: true, MyInt: 144}},
	}}
)

func helloSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema())
	s.Required = []string{"message"}
	return s
}

func complexRecordSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("my_string", openapi3.NewStringSchema()).
		WithProperty("my_bool", openapi3.NewBoolSchema()).
		WithProperty("my_int", openapi3.NewIntegerSchema())
	s.Required = []string{"my_string", "my_bool", "my_int"}
	return s
}

func complexDataSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("data", openapi3.NewArraySchema().WithItems(complexRecordSchema()))
	s.Required = []string{"data"}
	return s
}

func complexListSchema() *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(complexDataSchema())
}

// documentSchema covers the top-level fields of the schema document only.
func documentSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("openapi", openapi3.NewStringSchema()).
		WithProperty("info", openapi3.NewObjectSchema()).
		WithProperty("paths", openapi3.NewObjectSchema())
	s.Required = []string{"openapi", "info", "paths"}
	return s
}
