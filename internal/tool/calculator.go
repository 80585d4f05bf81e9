package tool

import (
	"context"
	"errors"
	"fmt"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

// CalculatorRequest holds the operands and operation for the calculator.
type CalculatorRequest struct {
	FirstNum  float64 `mapstructure:"first_num"`
	SecondNum float64 `mapstructure:"second_num"`
	Operation string  `mapstructure:"operation"`
}

// Validate implements Validator.
func (r CalculatorRequest) Validate() error {
	if r.Operation == "" {
		return errors.New("operation is required")
	}
	return nil
}

type calculatorResult struct {
	Result float64 `json:"result"`
}

// NewCalculator returns the basic arithmetic tool.
func NewCalculator() Tool {
	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"first_num": {
				Type:        "number",
				Description: "The first operand",
			},
			"second_num": {
				Type:        "number",
				Description: "The second operand",
			},
			"operation": {
				Type:        "string",
				Description: "The arithmetic operation to perform",
				Enum:        []string{"add", "subtract", "multiply", "divide"},
			},
		},
		Required: []string{"first_num", "second_num", "operation"},
	}

	return NewBase(
		"calculator_tool",
		"A simple calculator tool for basic arithmetic operations. Supported operations: add, subtract, multiply, divide.",
		schema,
		func(ctx context.Context, req CalculatorRequest) (calculatorResult, error) {
			var result float64
			switch req.Operation {
			case "add":
				result = req.FirstNum + req.SecondNum
			case "subtract":
				result = req.FirstNum - req.SecondNum
			case "multiply":
				result = req.FirstNum * req.SecondNum
			case "divide":
				if req.SecondNum == 0 {
					return calculatorResult{}, errors.New("Division by zero is not allowed.")
				}
				result = req.FirstNum / req.SecondNum
			default:
				return calculatorResult{}, fmt.Errorf("Unsupported operation: %s", req.Operation)
			}
			return calculatorResult{Result: result}, nil
		},
	)
}
