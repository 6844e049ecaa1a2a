package builtins

// table is the single name -> implementation mapping every built-in
// dispatches through (spec.md section 4.5). Built-in names are English
// only here; see DESIGN.md's Open Question decisions for why no Arabic
// call-target aliases are included.
var table = map[string]builtinFunc{
	"print": biPrint,
	"input": biInput,

	"len":   biLen,
	"type":  biType,
	"str":   biStr,
	"int":   biInt,
	"float": biFloat,

	"sqrt":   biSqrt,
	"pow":    biPow,
	"abs":    biAbs,
	"round":  biRound,
	"floor":  biFloor,
	"ceil":   biCeil,
	"max":    biMax,
	"min":    biMin,
	"sum":    biSum,
	"random": biRandom,
	"range":  biRange,

	"push":   biPush,
	"pop":    biPop,
	"keys":   biKeys,
	"values": biValues,
	"join":   biJoin,
	"split":  biSplit,

	"readFile":   biReadFile,
	"writeFile":  biWriteFile,
	"fileExists": biFileExists,
	"deleteFile": biDeleteFile,
	"sleep":      biSleep,
	"json":       biJSON,
	"parseJson":  biParseJSON,
	"html":       biHTML,

	"import": biImport,
	"export": biExport,
}
