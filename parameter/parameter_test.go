package parameter

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/calculation"
	"github.com/shibukawa/scriptstep/testhelper"
)

const calculationParameter = `
	<Parameter type="Calculation">
		<Calculation datatype="1" position="0">
			<Calculation>
				<Text><![CDATA[List (
	"a" ;
	"b" ;
)]]></Text>
				<ChunkList hash="BA0A8AA601F63955DF5CF6699A65C4C7">
					<Chunk type="FunctionRef">List</Chunk>
					<Chunk type="NoRef"> (&#13;&#09;&quot;a&quot; ;&#13;&#09;&quot;b&quot; ;&#13;)</Chunk>
				</ChunkList>
			</Calculation>
		</Calculation>
	</Parameter>`

func TestParseParameter(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		expected Parameter
	}{
		{
			name: "boolean",
			xml: `
				<Parameter type="Boolean">
					<Boolean type="Select" id="4096" value="True"></Boolean>
				</Parameter>`,
			expected: BooleanParameter{Value: NewBoolean(Select, true, "Select")},
		},
		{
			name: "text with entities",
			xml: `
				<Parameter type="Text">
					<Text value="&quot;hello&quot;a&#13;b&#13;c&#10;lf"></Text>
				</Parameter>`,
			expected: TextParameter{Value: "\"hello\"a\rb\rc\nlf"},
		},
		{
			name: "empty text",
			xml: `
				<Parameter type="Text">
					<Text></Text>
				</Parameter>`,
			expected: TextParameter{Value: ""},
		},
		{
			name: "field reference target",
			xml: `
				<Parameter type="Target">
					<FieldReference id="1" name="field_name">
						<repetition value="3"></repetition>
						<TableOccurrenceReference id="1065089" name="table_name"></TableOccurrenceReference>
					</FieldReference>
				</Parameter>`,
			expected: TargetParameter{Value: FieldReference{Name: "field_name", Table: "table_name", Repetition: "3"}},
		},
		{
			name: "variable target",
			xml: `
				<Parameter type="Target">
					<Variable value="$hello">
						<repetition value="4"></repetition>
					</Variable>
				</Parameter>`,
			expected: TargetParameter{Value: Variable{Name: "$hello", Repetition: "4"}},
		},
		{
			name:     "calculation",
			xml:      calculationParameter,
			expected: CalculationParameter{Value: "List (\n\t\"a\" ;\n\t\"b\" ;\n)"},
		},
	}

	parser := NewParser(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, start := testhelper.OpenFirst(t, tt.xml)

			param, err := parser.ParseParameter(r, start)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, param)
			testhelper.AssertDrained(t, r)
		})
	}
}

func TestParseParameter_CalculationFromChunks(t *testing.T) {
	r, start := testhelper.OpenFirst(t, calculationParameter)

	param, err := NewParser(calculation.ChunkSource{}).ParseParameter(r, start)
	assert.NoError(t, err)
	assert.Equal[Parameter](t, CalculationParameter{Value: "List (\r\t\"a\" ;\r\t\"b\" ;\r)"}, param)
}

func TestParseParameter_Errors(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		sentinel error
		message  string
	}{
		{
			name:     "unknown type",
			xml:      `<Parameter type="URL"><URL autoEncode="True"/></Parameter>`,
			sentinel: scriptstep.ErrUnknownParameterType,
			message:  "unknown parameter type: URL",
		},
		{
			name:     "missing type",
			xml:      `<Parameter><Text value="a"/></Parameter>`,
			sentinel: scriptstep.ErrMissingAttribute,
			message:  "missing attribute: type",
		},
		{
			name:     "inner boolean failure",
			xml:      `<Parameter type="Boolean"><Boolean type="Select" id="9999" value="True"/></Parameter>`,
			sentinel: scriptstep.ErrUnknownBooleanKind,
			message:  "Boolean parameter: unknown boolean id: 9999",
		},
		{
			name:     "text stream ends first",
			xml:      `<Parameter type="Text"><Text value="a">`,
			sentinel: scriptstep.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, start := testhelper.OpenFirst(t, tt.xml)

			_, err := NewParser(nil).ParseParameter(r, start)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}

			var parseErr *scriptstep.ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}
