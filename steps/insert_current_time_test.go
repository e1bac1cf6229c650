package steps

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func currentTimeStep(params string) string {
	return `<Step index="5" id="14" name="Insert Current Time" enable="True">
	<UUID>960A8BC0-7C06-4E9B-AA8A-67F07707D5E8</UUID>
	<OwnerID></OwnerID>
	<Options>4097</Options>
	<ParameterValues membercount="2">` + params + `
	</ParameterValues>
</Step>`
}

const creationAccountField = `
		<Parameter type="Target">
			<FieldReference id="2" name="creationAccount" UUID="165A76D2-26D4-4B54-8E1F-2C0E798FB400">
				<repetition value="123"></repetition>
				<TableOccurrenceReference id="1065089" name="lkjflkjf" UUID="04AF7D77-38A6-4E99-B4B5-F27013E04589"></TableOccurrenceReference>
			</FieldReference>
		</Parameter>`

func TestInsertCurrentTime(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "select and field",
			fragment: currentTimeStep(selectTrue + creationAccountField),
			expected: "Insert Current Time [ Select ; Target: lkjflkjf::creationAccount[123] ]",
		},
		{
			// the label is shown for a false Select too
			name:     "false select still shows label",
			fragment: currentTimeStep(selectFalse + creationAccountField),
			expected: "Insert Current Time [ Select ; Target: lkjflkjf::creationAccount[123] ]",
		},
		{
			name:     "target only",
			fragment: currentTimeStep(creationAccountField),
			expected: "Insert Current Time [ Target: lkjflkjf::creationAccount[123] ]",
		},
		{
			name:     "no parameters",
			fragment: currentTimeStep(""),
			expected: "Insert Current Time []",
		},
		{
			name:     "text parameter is ignored",
			fragment: currentTimeStep(helloVariable + crText),
			expected: "Insert Current Time [ Target: $hello ]",
		},
	}

	decompiler := NewInsertCurrentTime(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok, err := decompiler.Decompile(strings.TrimSpace(tt.fragment))
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, line)
		})
	}
}
