package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/badrhassa/exo/internal/value"
)

// testRun is a helper that runs source against a fresh Interpreter and
// returns the top-level result value plus captured stdout.
func testRun(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	var buf bytes.Buffer
	ip := New(&buf, strings.NewReader(""))
	val, err := ip.RunSource(src, "<test>")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	return val, buf.String()
}

func testIntValue(t *testing.T, v value.Value, want int64) {
	t.Helper()
	i, ok := v.(value.Int)
	if !ok {
		t.Fatalf("expected Int, got %T (%s)", v, v.String())
	}
	if i.Value != want {
		t.Errorf("got %d, want %d", i.Value, want)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ^ 3", 8},
		{"10 % 3", 1},
	}
	for _, tt := range tests {
		val, _ := testRun(t, tt.src)
		testIntValue(t, val, tt.want)
	}
}

func TestVariableDeclarationAndAssignment(t *testing.T) {
	src := `
let x = 1
x = x + 1
x = x + 1
x
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 3)
}

func TestIfElseSameScope(t *testing.T) {
	src := `
let x = 5
if x > 3
    let y = 10
else
    let y = 20
end
y
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 10)
}

func TestWhileBreakContinue(t *testing.T) {
	src := `
let i = 0
let sum = 0
while i < 10
    i = i + 1
    if i == 5
        continue
    end
    if i == 8
        break
    end
    sum = sum + i
end
sum
`
	// 1+2+3+4 (5 skipped) +6+7 = 23, loop stops before adding 8
	val, _ := testRun(t, src)
	testIntValue(t, val, 23)
}

func TestForOverList(t *testing.T) {
	src := `
let total = 0
for n in [1, 2, 3, 4]
    total = total + n
end
total
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 10)
}

func TestFunctionImplicitReturn(t *testing.T) {
	src := `
func add(a, b)
    a + b
end
add(3, 4)
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 7)
}

func TestFunctionImplicitReturnThroughIfChain(t *testing.T) {
	src := `
func classify(n)
    if n < 0
        -1
    else if n == 0
        0
    else
        1
    end
end
classify(42)
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 1)
}

func TestFunctionExplicitReturn(t *testing.T) {
	src := `
func earlyExit(n)
    if n > 10
        return 100
    end
    return n
end
earlyExit(20)
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 100)
}

func TestClosureCapturesEnclosingScope(t *testing.T) {
	src := `
let counter = 0
func increment()
    counter = counter + 1
    counter
end
increment()
increment()
increment()
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 3)
}

func TestRecursion(t *testing.T) {
	src := `
func fact(n)
    if n <= 1
        return 1
    end
    return n * fact(n - 1)
end
fact(6)
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 720)
}

func TestRecursionCapTriggersRecursionError(t *testing.T) {
	var buf bytes.Buffer
	ip := NewWithCap(&buf, strings.NewReader(""), 10)
	src := `
func loop(n)
    return loop(n + 1)
end
loop(0)
`
	_, err := ip.RunSource(src, "<test>")
	if err == nil {
		t.Fatal("expected a recursion error")
	}
	if err.Kind != "RecursionError" {
		t.Errorf("got error kind %s, want RecursionError", err.Kind)
	}
}

func TestArabicKeywordAliases(t *testing.T) {
	src := `
متغير x = 1
اذا x == 1
    متغير y = 99
نهاية
y
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 99)
}

func TestPrintBuiltinWritesToOutStream(t *testing.T) {
	_, out := testRun(t, `print("hello", "world")`)
	if strings.TrimSpace(out) != "hello world" {
		t.Errorf("got output %q, want %q", out, "hello world")
	}
}

func TestStringAndListBuiltins(t *testing.T) {
	val, _ := testRun(t, `len([1, 2, 3])`)
	testIntValue(t, val, 3)

	val, _ = testRun(t, `len(split("a,b,c", ","))`)
	testIntValue(t, val, 3)

	val, _ = testRun(t, `sum([1, 2, 3, 4])`)
	testIntValue(t, val, 10)
}

func TestMapDotAssignmentCreatesKey(t *testing.T) {
	src := `
let m = {"a": 1}
m.b = 2
m.b
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 2)
}

func TestIndexAssignment(t *testing.T) {
	src := `
let items = [1, 2, 3]
items[1] = 99
items[1]
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 99)
}

func TestJSONRoundTrip(t *testing.T) {
	src := `
let encoded = json({"a": 1, "b": [1, 2, 3]})
let decoded = parseJson(encoded)
decoded.a
`
	val, _ := testRun(t, src)
	testIntValue(t, val, 1)
}

func TestRouteRegistrationDoesNotExecuteBody(t *testing.T) {
	var buf bytes.Buffer
	ip := New(&buf, strings.NewReader(""))
	src := `
route /hello
    print("should not run yet")
end
`
	if _, err := ip.RunSource(src, "<test>"); err != nil {
		t.Fatalf("unexpected error: %s", err.Format())
	}
	if strings.Contains(buf.String(), "should not run yet") {
		t.Fatal("route body ran at definition time")
	}
	if _, ok := ip.Routes().Lookup("/hello"); !ok {
		t.Fatal("route was not registered")
	}
}
