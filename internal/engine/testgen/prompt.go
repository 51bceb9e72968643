package testgen

import "fmt"

const codeFence = "```"

const promptTemplate = `Please generate Vitest test code for the following source code.

Important: Generate only TypeScript test code, not any other language.
Specifically, create test code for the functions defined in the source code.
Use vitest for testing.

- Exclude unnecessary explanations or comments
- DO NOT include any code block markers (` + codeFence + `) or language indicators
- Generate only pure executable test code
- DO NOT include any markdown formatting
- DO NOT include any explanatory text

Please consider the following aspects when writing tests:
1. For date-related tests:
   - Consider edge cases for month-end/year-end
   - Utilize JavaScript Date object's automatic overflow handling
   - Use proper date calculation methods (e.g., setDate()) instead of simple arithmetic
   - Consider leap years

2. General test considerations:
   - Include edge cases as well as normal cases
   - Include tests for exception scenarios
   - Each test should verify only one behavior

3. Parameter handling:
   - Always provide valid values for all required parameters
   - For error case testing:
     - Fill all parameters with valid default values first
     - Then modify only the specific parameter being tested for error
     - Use expect().toThrow() or similar assertions for error cases

Write the test code starting directly with the imports, like this:

import { describe, it, expect } from 'vitest';
import { functionName } from '@/%s';

describe('Test Suite Name', () => {
    // Test cases
});

Source code:
%s`

// BuildPrompt embeds the import path and the full source into the Vitest
// instruction template.
func BuildPrompt(source, importPath string) string {
	return fmt.Sprintf(promptTemplate, importPath, source)
}
