package expr

import "sort"

// Category groups expression functions for the catalog browser.
type Category string

const (
	CategoryAggregation  Category = "aggregation"
	CategoryMathematical Category = "mathematical"
	CategoryString       Category = "string"
	CategoryDate         Category = "date"
	CategoryLogical      Category = "logical"
	CategoryGrid         Category = "grid"
	CategoryStatistical  Category = "statistical"
	CategoryFinancial    Category = "financial"
)

// Parameter describes one declared parameter of an expression function.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Optional    bool
}

// FunctionDefinition is the static metadata for one expression-language
// function. Variadic means the last parameter repeats; the parser never
// consults it, only the validation pass does.
type FunctionDefinition struct {
	Name       string
	Category   Category
	Parameters []Parameter
	Variadic   bool
	ReturnType string
	Example    string
}

// The registry is built once at init and never mutated afterwards, so it
// is safe to share without locking. Definitions returned by lookups are
// read-only.
var (
	functionDefs = []FunctionDefinition{
		{
			Name:     "SUM",
			Category: CategoryAggregation,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Values to total"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "SUM([Quantity], [Adjustment])",
		},
		{
			Name:     "AVG",
			Category: CategoryAggregation,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Values to average"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "AVG([Price])",
		},
		{
			Name:     "MIN",
			Category: CategoryAggregation,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Values to compare"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "MIN([Bid], [Ask])",
		},
		{
			Name:     "MAX",
			Category: CategoryAggregation,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Values to compare"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "MAX([Bid], [Ask])",
		},
		{
			Name:     "COUNT",
			Category: CategoryAggregation,
			Parameters: []Parameter{
				{Name: "values", Type: "any", Description: "Values to count"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "COUNT([OrderId])",
		},
		{
			Name:     "ABS",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Input value"},
			},
			ReturnType: "number",
			Example:    "ABS([Pnl])",
		},
		{
			Name:     "ROUND",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Input value"},
				{Name: "digits", Type: "number", Description: "Decimal places", Optional: true},
			},
			ReturnType: "number",
			Example:    "ROUND([Price], 2)",
		},
		{
			Name:     "FLOOR",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Input value"},
			},
			ReturnType: "number",
			Example:    "FLOOR([Price])",
		},
		{
			Name:     "CEILING",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Input value"},
			},
			ReturnType: "number",
			Example:    "CEILING([Price])",
		},
		{
			Name:     "POWER",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "base", Type: "number", Description: "Base value"},
				{Name: "exponent", Type: "number", Description: "Exponent"},
			},
			ReturnType: "number",
			Example:    "POWER([Rate], 2)",
		},
		{
			Name:     "SQRT",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Input value"},
			},
			ReturnType: "number",
			Example:    "SQRT([Variance])",
		},
		{
			Name:     "MOD",
			Category: CategoryMathematical,
			Parameters: []Parameter{
				{Name: "value", Type: "number", Description: "Dividend"},
				{Name: "divisor", Type: "number", Description: "Divisor"},
			},
			ReturnType: "number",
			Example:    "MOD([RowIndex], 2)",
		},
		{
			Name:     "CONCAT",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "values", Type: "string", Description: "Strings to join"},
			},
			Variadic:   true,
			ReturnType: "string",
			Example:    "CONCAT([First], ' ', [Last])",
		},
		{
			Name:     "LEFT",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
				{Name: "count", Type: "number", Description: "Characters to take"},
			},
			ReturnType: "string",
			Example:    "LEFT([Symbol], 3)",
		},
		{
			Name:     "RIGHT",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
				{Name: "count", Type: "number", Description: "Characters to take"},
			},
			ReturnType: "string",
			Example:    "RIGHT([Account], 4)",
		},
		{
			Name:     "UPPER",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
			},
			ReturnType: "string",
			Example:    "UPPER([Symbol])",
		},
		{
			Name:     "LOWER",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
			},
			ReturnType: "string",
			Example:    "LOWER([Email])",
		},
		{
			Name:     "TRIM",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
			},
			ReturnType: "string",
			Example:    "TRIM([Comment])",
		},
		{
			Name:     "LEN",
			Category: CategoryString,
			Parameters: []Parameter{
				{Name: "text", Type: "string", Description: "Input text"},
			},
			ReturnType: "number",
			Example:    "LEN([Description])",
		},
		{
			Name:       "NOW",
			Category:   CategoryDate,
			ReturnType: "date",
			Example:    "NOW()",
		},
		{
			Name:       "TODAY",
			Category:   CategoryDate,
			ReturnType: "date",
			Example:    "TODAY()",
		},
		{
			Name:     "YEAR",
			Category: CategoryDate,
			Parameters: []Parameter{
				{Name: "date", Type: "date", Description: "Input date"},
			},
			ReturnType: "number",
			Example:    "YEAR([TradeDate])",
		},
		{
			Name:     "MONTH",
			Category: CategoryDate,
			Parameters: []Parameter{
				{Name: "date", Type: "date", Description: "Input date"},
			},
			ReturnType: "number",
			Example:    "MONTH([TradeDate])",
		},
		{
			Name:     "DAY",
			Category: CategoryDate,
			Parameters: []Parameter{
				{Name: "date", Type: "date", Description: "Input date"},
			},
			ReturnType: "number",
			Example:    "DAY([SettleDate])",
		},
		{
			Name:     "IF",
			Category: CategoryLogical,
			Parameters: []Parameter{
				{Name: "condition", Type: "boolean", Description: "Branch condition"},
				{Name: "then", Type: "any", Description: "Value when true"},
				{Name: "else", Type: "any", Description: "Value when false", Optional: true},
			},
			ReturnType: "any",
			Example:    "IF([Pnl] > 0, 'gain', 'loss')",
		},
		{
			Name:     "AND",
			Category: CategoryLogical,
			Parameters: []Parameter{
				{Name: "conditions", Type: "boolean", Description: "Conditions to combine"},
			},
			Variadic:   true,
			ReturnType: "boolean",
			Example:    "AND([Qty] > 0, [Price] > 0)",
		},
		{
			Name:     "OR",
			Category: CategoryLogical,
			Parameters: []Parameter{
				{Name: "conditions", Type: "boolean", Description: "Conditions to combine"},
			},
			Variadic:   true,
			ReturnType: "boolean",
			Example:    "OR([Side] == 'B', [Side] == 'S')",
		},
		{
			Name:     "NOT",
			Category: CategoryLogical,
			Parameters: []Parameter{
				{Name: "condition", Type: "boolean", Description: "Condition to negate"},
			},
			ReturnType: "boolean",
			Example:    "NOT([Cancelled])",
		},
		{
			Name:       "ROW",
			Category:   CategoryGrid,
			ReturnType: "number",
			Example:    "ROW()",
		},
		{
			Name:     "CELL",
			Category: CategoryGrid,
			Parameters: []Parameter{
				{Name: "column", Type: "string", Description: "Column identifier"},
				{Name: "row", Type: "number", Description: "Row index", Optional: true},
			},
			ReturnType: "any",
			Example:    "CELL('Price', 0)",
		},
		{
			Name:     "MEDIAN",
			Category: CategoryStatistical,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Sample values"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "MEDIAN([Latency])",
		},
		{
			Name:     "STDEV",
			Category: CategoryStatistical,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Sample values"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "STDEV([Return])",
		},
		{
			Name:     "VAR",
			Category: CategoryStatistical,
			Parameters: []Parameter{
				{Name: "values", Type: "number", Description: "Sample values"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "VAR([Return])",
		},
		{
			Name:     "NPV",
			Category: CategoryFinancial,
			Parameters: []Parameter{
				{Name: "rate", Type: "number", Description: "Discount rate per period"},
				{Name: "cashflows", Type: "number", Description: "Cash flows per period"},
			},
			Variadic:   true,
			ReturnType: "number",
			Example:    "NPV(0.05, [Cf1], [Cf2])",
		},
		{
			Name:     "PMT",
			Category: CategoryFinancial,
			Parameters: []Parameter{
				{Name: "rate", Type: "number", Description: "Interest rate per period"},
				{Name: "periods", Type: "number", Description: "Number of payments"},
				{Name: "principal", Type: "number", Description: "Present value"},
			},
			ReturnType: "number",
			Example:    "PMT([Rate] / 12, 360, [Loan])",
		},
		{
			Name:     "FV",
			Category: CategoryFinancial,
			Parameters: []Parameter{
				{Name: "rate", Type: "number", Description: "Interest rate per period"},
				{Name: "periods", Type: "number", Description: "Number of periods"},
				{Name: "payment", Type: "number", Description: "Payment per period"},
			},
			ReturnType: "number",
			Example:    "FV([Rate], 12, -100)",
		},
	}

	functionsByName     map[string]*FunctionDefinition
	functionsByCategory map[Category][]*FunctionDefinition
)

func init() {
	functionsByName = make(map[string]*FunctionDefinition, len(functionDefs))
	functionsByCategory = make(map[Category][]*FunctionDefinition)
	for i := range functionDefs {
		def := &functionDefs[i]
		functionsByName[def.Name] = def
		functionsByCategory[def.Category] = append(functionsByCategory[def.Category], def)
	}
}

// FunctionByName looks up a registered function. Matching is case-sensitive.
func FunctionByName(name string) (*FunctionDefinition, bool) {
	def, ok := functionsByName[name]
	return def, ok
}

// FunctionsByCategory returns the registered functions in one category,
// in registration order.
func FunctionsByCategory(cat Category) []*FunctionDefinition {
	return functionsByCategory[cat]
}

// Functions returns every registered function in registration order.
func Functions() []*FunctionDefinition {
	out := make([]*FunctionDefinition, len(functionDefs))
	for i := range functionDefs {
		out[i] = &functionDefs[i]
	}
	return out
}

// Categories returns the categories that have at least one function,
// sorted by name.
func Categories() []Category {
	out := make([]Category, 0, len(functionsByCategory))
	for cat := range functionsByCategory {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
