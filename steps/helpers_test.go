package steps

func insertTextStep(params string) string {
	return `<Step index="0" id="61" name="Insert Text" enable="True">
	<UUID>1FCB6945-5246-4CA4-B2DB-B0A6D3ECE00F</UUID>
	<OwnerID></OwnerID>
	<Options>0</Options>
	<ParameterValues membercount="3">` + params + `
	</ParameterValues>
</Step>`
}

const (
	selectTrue = `
		<Parameter type="Boolean">
			<Boolean type="Select" id="4096" value="True"></Boolean>
		</Parameter>`
	selectFalse = `
		<Parameter type="Boolean">
			<Boolean type="Select" id="4096" value="False"></Boolean>
		</Parameter>`
	emptyText = `
		<Parameter type="Text">
			<Text></Text>
		</Parameter>`
	crText = `
		<Parameter type="Text">
			<Text value="a&#13;b&#13;c"></Text>
		</Parameter>`
	helloVariable = `
		<Parameter type="Target">
			<Variable value="$hello">
				<repetition value="1"></repetition>
			</Variable>
		</Parameter>`
)
