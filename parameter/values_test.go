package parameter

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/testhelper"
)

func TestValues_Text(t *testing.T) {
	values := NewValues(TextParameter{Value: "Hello"}, TextParameter{Value: "World"})

	text, ok := values.Text()
	assert.True(t, ok)
	assert.Equal(t, "Hello", text)
}

func TestValues_Target(t *testing.T) {
	fr := FieldReference{Name: "Field1", Table: "my_table", Repetition: "1"}
	values := NewValues(TextParameter{Value: "x"}, TargetParameter{Value: fr}, TargetParameter{Value: Variable{Name: "$y"}})

	target, ok := values.Target()
	assert.True(t, ok)
	assert.Equal[Target](t, fr, target)
}

func TestValues_Calculation(t *testing.T) {
	values := NewValues()
	values.Add(CalculationParameter{Value: "1 + 2"})

	calc, ok := values.Calculation()
	assert.True(t, ok)
	assert.Equal(t, "1 + 2", calc)
}

func TestValues_Boolean(t *testing.T) {
	values := NewValues(
		BooleanParameter{Value: NewBoolean(WithDialog, true, "With dialog")},
		BooleanParameter{Value: NewBoolean(Select, false, "Select")},
		BooleanParameter{Value: NewBoolean(Select, true, "Select")},
	)

	b, ok := values.Boolean(Select)
	assert.True(t, ok)
	assert.Equal(t, NewBoolean(Select, false, "Select"), b)

	_, ok = values.Boolean(VerifySSLCertificates)
	assert.False(t, ok)
}

func TestValues_Empty(t *testing.T) {
	values := NewValues()

	_, ok := values.Text()
	assert.False(t, ok)
	_, ok = values.Target()
	assert.False(t, ok)
	_, ok = values.Calculation()
	assert.False(t, ok)
	_, ok = values.Boolean(Select)
	assert.False(t, ok)
	assert.Equal(t, 0, values.Len())
}

func TestParseValues(t *testing.T) {
	xmlText := `
		<ParameterValues membercount="3">
			<Parameter type="Boolean">
				<Boolean type="Select" id="4096" value="True"></Boolean>
			</Parameter>
			<Parameter type="Target">
				<Variable value="$hello">
					<repetition value="1"></repetition>
				</Variable>
			</Parameter>
			<Encoding type="1" name="UTF-16"></Encoding>
			<Parameter type="Text">
				<Text value="a&#13;b&#13;c"></Text>
			</Parameter>
		</ParameterValues>`

	r, start := testhelper.OpenFirst(t, xmlText)

	values, err := NewParser(nil).ParseValues(r, start)
	assert.NoError(t, err)
	assert.Equal(t, 3, values.Len())
	testhelper.AssertDrained(t, r)

	var kinds []string
	for _, param := range values.All() {
		switch param.(type) {
		case BooleanParameter:
			kinds = append(kinds, "Boolean")
		case TargetParameter:
			kinds = append(kinds, "Target")
		case TextParameter:
			kinds = append(kinds, "Text")
		case CalculationParameter:
			kinds = append(kinds, "Calculation")
		}
	}

	assert.Equal(t, []string{"Boolean", "Target", "Text"}, kinds)

	text, _ := values.Text()
	assert.Equal(t, "a\rb\rc", text)

	target, _ := values.Target()
	assert.Equal(t, "$hello", target.String())
}

func TestParseValues_Errors(t *testing.T) {
	tests := []struct {
		name     string
		xml      string
		sentinel error
	}{
		{
			name: "inner failure aborts the block",
			xml: `<ParameterValues>
				<Parameter type="Text"><Text value="ok"/></Parameter>
				<Parameter type="Boolean"><Boolean type="Select" id="9999" value="True"/></Parameter>
			</ParameterValues>`,
			sentinel: scriptstep.ErrUnknownBooleanKind,
		},
		{
			name:     "unknown parameter type",
			xml:      `<ParameterValues><Parameter type="UniversalPathList"/></ParameterValues>`,
			sentinel: scriptstep.ErrUnknownParameterType,
		},
		{
			name:     "stream ends first",
			xml:      `<ParameterValues><Parameter type="Text"><Text value="ok"/></Parameter>`,
			sentinel: scriptstep.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, start := testhelper.OpenFirst(t, tt.xml)

			values, err := NewParser(nil).ParseValues(r, start)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Zero(t, values)
		})
	}
}
