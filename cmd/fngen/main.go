// cmd/fngen/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// This binary is a code-generation tool.
//
// It reads a manifest listing the function arities to cover and generates, for
// each arity N, the TupleN / CurryN / UncurryN / PartialN / TupledN /
// UntupledN declarations that mirror the hand-written arity-2/3 combinators.
//
// Key behaviors:
// - Reads the manifest as JSON or YAML, selected by file extension
// - Detects the destination package name from the output directory's Go files
//   (the manifest's package field is the fallback)
// - Refuses to generate identifiers the destination package already declares
// - Formats output with go/format and writes it atomically (temp file + rename)
//   to avoid partial writes

// Family names accepted in a manifest.
const (
	familyTuple   = "tuple"
	familyCurry   = "curry"
	familyPartial = "partial"
	familyTupled  = "tupled"
)

// Arity bounds for a manifest. Lower arities are hand-written; beyond nine
// the ordinal field names run out.
const (
	minArity = 4
	maxArity = 9
)

// Spec is the full input schema consumed by the generator.
type Spec struct {
	// Package is the target package name. Optional when the output directory
	// already contains Go files; a detected package name wins over this field.
	Package string `json:"package" yaml:"package"`

	// Arities lists the arities to generate, each in [4, 9], ascending.
	Arities []int `json:"arities" yaml:"arities"`

	// Families is optional:
	// - empty: generate every family
	// - otherwise: a subset of tuple, curry, partial, tupled
	//
	// The tupled family references the TupleN types; select tuple alongside
	// tupled unless the destination package already declares them.
	Families []string `json:"families" yaml:"families"`
}

// familySet records which combinator families to emit.
type familySet struct {
	Tuple   bool
	Curry   bool
	Partial bool
	Tupled  bool
}

// arityField describes one generated tuple field and function parameter.
type arityField struct {
	Name      string // ordinal field name: First, Second, ...
	TypeParam string // A, B, ...
	Arg       string // a, b, ...
}

// arityData is the per-arity input passed to the Go template.
//
// Everything the template language is too weak to assemble (joined lists,
// the nested curry chain) is precomputed here.
type arityData struct {
	N     int
	RestN int

	EmitTuple   bool
	EmitCurry   bool
	EmitPartial bool
	EmitTupled  bool

	Tuple  string // Tuple4
	Fields []arityField
	First  arityField

	TypeParams  string // "A, B, C, D"
	AllParams   string // "A, B, C, D, R"
	ParamDecl   string // "a A, b B, c C, d D"
	Args        string // "a, b, c, d"
	FuncType    string // "func(A, B, C, D) R"
	CurryType   string // "func(A) func(B) func(C) func(D) R"
	LiteralArgs string // "First: a, Second: b, Third: c, Fourth: d"
	FieldArgs   string // "t.First, t.Second, t.Third, t.Fourth"

	RestParamDecl string // "b B, c C, d D"
	RestFuncType  string // "func(B, C, D) R"

	CurryFunc string // full source of CurryN (doc comment lives in the template)
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package string
	Arities []arityData
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("fngen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to arity manifest (.json, .yaml or .yml)")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: fngen -spec <manifest.yaml> -out <file.gen.go>")
		return 2
	}

	spec, err := loadSpec(*specPath)
	must(err)

	validateSpec(&spec)

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	packageName, err := detectPackageName(packageDir)
	if err != nil {
		// No parseable Go files in the destination; fall back to the manifest.
		packageName = spec.Package
	}
	if strings.TrimSpace(packageName) == "" {
		panic(fmt.Errorf(
			"cannot determine target package: no Go files in %s and the manifest's package field is empty",
			packageDir,
		))
	}

	families := selectedFamilies(spec.Families)

	arities := make([]arityData, 0, len(spec.Arities))
	for _, n := range spec.Arities {
		arities = append(arities, buildArity(n, families))
	}

	if err := checkDeclCollisions(packageDir, generatedNames(arities)); err != nil {
		// User-actionable: a hand-written declaration shadows a generated one.
		panic(err)
	}

	data := templateData{
		Package: packageName,
		Arities: arities,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	formatted, err := format.Source([]byte(out.String()))
	must(err)

	must(writeFileAtomic(generatedFilePath, formatted, 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// loadSpec reads and decodes the manifest. The decoder is chosen by file
// extension: .json for JSON, .yaml/.yml for YAML.
func loadSpec(specPath string) (Spec, error) {
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return Spec{}, err
	}

	var spec Spec
	switch ext := strings.ToLower(filepath.Ext(specPath)); ext {
	case ".json":
		err = json.Unmarshal(specBytes, &spec)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(specBytes, &spec)
	default:
		return Spec{}, fmt.Errorf("unsupported manifest extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// validateSpec validates semantic correctness of the manifest.
func validateSpec(spec *Spec) {
	var problems []string

	if pkg := strings.TrimSpace(spec.Package); pkg != "" && !token.IsIdentifier(pkg) {
		problems = append(problems, fmt.Sprintf("package %q is not a valid Go identifier", pkg))
	}

	if len(spec.Arities) == 0 {
		problems = append(problems, "arities (must have at least 1)")
	}

	previous := 0
	for _, n := range spec.Arities {
		if n < minArity || n > maxArity {
			problems = append(problems, fmt.Sprintf("arity %d out of range [%d, %d]", n, minArity, maxArity))
			continue
		}
		if n <= previous {
			problems = append(problems, fmt.Sprintf("arity %d out of order (arities must be ascending, without duplicates)", n))
		}
		previous = n
	}

	seenFamilies := make(map[string]struct{}, len(spec.Families))
	for _, family := range spec.Families {
		switch family {
		case familyTuple, familyCurry, familyPartial, familyTupled:
		default:
			problems = append(problems, fmt.Sprintf("unknown family %q", family))
			continue
		}
		if _, ok := seenFamilies[family]; ok {
			problems = append(problems, fmt.Sprintf("duplicate family %q", family))
		}
		seenFamilies[family] = struct{}{}
	}

	if len(problems) > 0 {
		panic(fmt.Errorf("invalid manifest: %s", strings.Join(problems, "; ")))
	}
}

// selectedFamilies maps manifest family names onto a familySet.
// An empty list selects every family.
func selectedFamilies(names []string) familySet {
	if len(names) == 0 {
		return familySet{Tuple: true, Curry: true, Partial: true, Tupled: true}
	}

	var families familySet
	for _, name := range names {
		switch name {
		case familyTuple:
			families.Tuple = true
		case familyCurry:
			families.Curry = true
		case familyPartial:
			families.Partial = true
		case familyTupled:
			families.Tupled = true
		}
	}
	return families
}

// detectPackageName parses the Go files in packageDir and returns the package
// name the generated file must declare.
//
// Test files and generated files are skipped so a stale previous output never
// decides the name.
func detectPackageName(packageDir string) (string, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", err
	}

	fileSet := token.NewFileSet()

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)
		parsedFile, parseErr := parser.ParseFile(fileSet, filePath, nil, parser.PackageClauseOnly)
		if parseErr != nil || parsedFile == nil || parsedFile.Name == nil {
			continue
		}

		return parsedFile.Name.Name, nil
	}

	return "", fmt.Errorf("no parseable Go files in %s", packageDir)
}

// checkDeclCollisions returns an error when any of the to-be-generated
// top-level identifiers is already declared by hand in packageDir.
//
// Only non-test, non-generated files count: regenerating over a previous
// output must never be reported as a collision.
func checkDeclCollisions(packageDir string, names []string) error {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		// Destination may not exist yet; nothing to collide with.
		return nil
	}

	fileSet := token.NewFileSet()
	var collisions []string

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)

		// Parse with AllErrors so we can still get partial ASTs when possible.
		parsedFile, parseErr := parser.ParseFile(fileSet, filePath, nil, parser.AllErrors)
		if parsedFile == nil {
			_ = parseErr
			continue
		}

		for _, declaration := range parsedFile.Decls {
			switch decl := declaration.(type) {
			case *ast.FuncDecl:
				// Ignore methods; only free functions can collide.
				if decl.Recv != nil || decl.Name == nil {
					continue
				}
				if _, ok := wanted[decl.Name.Name]; ok {
					collisions = append(collisions, decl.Name.Name)
				}

			case *ast.GenDecl:
				for _, genSpec := range decl.Specs {
					switch s := genSpec.(type) {
					case *ast.TypeSpec:
						if s.Name == nil {
							continue
						}
						if _, ok := wanted[s.Name.Name]; ok {
							collisions = append(collisions, s.Name.Name)
						}
					case *ast.ValueSpec:
						for _, ident := range s.Names {
							if _, ok := wanted[ident.Name]; ok {
								collisions = append(collisions, ident.Name)
							}
						}
					}
				}
			}
		}
	}

	if len(collisions) > 0 {
		return fmt.Errorf("declarations already present in %s: %s", packageDir, strings.Join(collisions, ", "))
	}
	return nil
}

// generatedNames lists every top-level identifier the template will emit for
// the given arities.
func generatedNames(arities []arityData) []string {
	var names []string
	for _, a := range arities {
		if a.EmitTuple {
			names = append(names, a.Tuple, "New"+a.Tuple)
		}
		if a.EmitCurry {
			names = append(names, fmt.Sprintf("Curry%d", a.N), fmt.Sprintf("Uncurry%d", a.N))
		}
		if a.EmitPartial {
			names = append(names, fmt.Sprintf("Partial%d", a.N))
		}
		if a.EmitTupled {
			names = append(names, fmt.Sprintf("Tupled%d", a.N), fmt.Sprintf("Untupled%d", a.N))
		}
	}
	return names
}

// ordinals names the tuple fields, indexed by position.
var ordinals = [...]string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth", "Ninth"}

// buildArity computes the template data for one arity.
//
// n must be within [minArity, maxArity]; validateSpec guarantees that for
// manifest input.
func buildArity(n int, families familySet) arityData {
	fields := make([]arityField, 0, n)
	for i := 0; i < n; i++ {
		fields = append(fields, arityField{
			Name:      ordinals[i],
			TypeParam: string(rune('A' + i)),
			Arg:       string(rune('a' + i)),
		})
	}

	typeParams := make([]string, 0, n)
	paramDecls := make([]string, 0, n)
	args := make([]string, 0, n)
	literalParts := make([]string, 0, n)
	fieldArgs := make([]string, 0, n)
	for _, field := range fields {
		typeParams = append(typeParams, field.TypeParam)
		paramDecls = append(paramDecls, field.Arg+" "+field.TypeParam)
		args = append(args, field.Arg)
		literalParts = append(literalParts, field.Name+": "+field.Arg)
		fieldArgs = append(fieldArgs, "t."+field.Name)
	}

	data := arityData{
		N:     n,
		RestN: n - 1,

		EmitTuple:   families.Tuple,
		EmitCurry:   families.Curry,
		EmitPartial: families.Partial,
		EmitTupled:  families.Tupled,

		Tuple:  fmt.Sprintf("Tuple%d", n),
		Fields: fields,
		First:  fields[0],

		TypeParams:  strings.Join(typeParams, ", "),
		AllParams:   strings.Join(typeParams, ", ") + ", R",
		ParamDecl:   strings.Join(paramDecls, ", "),
		Args:        strings.Join(args, ", "),
		FuncType:    "func(" + strings.Join(typeParams, ", ") + ") R",
		CurryType:   curryTail(fields),
		LiteralArgs: strings.Join(literalParts, ", "),
		FieldArgs:   strings.Join(fieldArgs, ", "),

		RestParamDecl: strings.Join(paramDecls[1:], ", "),
		RestFuncType:  "func(" + strings.Join(typeParams[1:], ", ") + ") R",
	}

	data.CurryFunc = curryFuncSource(data)
	return data
}

// curryTail renders the curried chain type for the given fields:
// fields [B, C] yield "func(B) func(C) R".
func curryTail(fields []arityField) string {
	out := "R"
	for i := len(fields) - 1; i >= 0; i-- {
		out = "func(" + fields[i].TypeParam + ") " + out
	}
	return out
}

// curryFuncSource renders the CurryN function. The nested closure chain is
// assembled here because its depth varies with the arity; the template holds
// everything of fixed shape.
func curryFuncSource(a arityData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "func Curry%d[%s any](f %s) %s {\n", a.N, a.AllParams, a.FuncType, a.CurryType)

	for i, field := range a.Fields {
		indent := strings.Repeat("\t", i+1)
		fmt.Fprintf(&b, "%sreturn func(%s %s) %s {\n", indent, field.Arg, field.TypeParam, curryTail(a.Fields[i+1:]))
	}

	fmt.Fprintf(&b, "%sreturn f(%s)\n", strings.Repeat("\t", a.N+1), a.Args)

	for i := a.N; i >= 1; i-- {
		b.WriteString(strings.Repeat("\t", i) + "}\n")
	}
	b.WriteString("}")

	return b.String()
}

// genTemplate is the Go source template used to generate the arity families.
//
// Output is passed through go/format before writing, so the template only has
// to be structurally correct, not canonically formatted.
var genTemplate = template.Must(
	template.New("fngen").Parse(`// Code generated by fngen; DO NOT EDIT.

package {{.Package}}
{{range .Arities}}
{{- if .EmitTuple}}
// {{.Tuple}} groups {{.N}} values of independent types.
type {{.Tuple}}[{{.TypeParams}} any] struct {
{{- range .Fields}}
	{{.Name}} {{.TypeParam}}
{{- end}}
}

// New{{.Tuple}} builds a {{.Tuple}} from its elements.
func New{{.Tuple}}[{{.TypeParams}} any]({{.ParamDecl}}) {{.Tuple}}[{{.TypeParams}}] {
	return {{.Tuple}}[{{.TypeParams}}]{{"{"}}{{.LiteralArgs}}}
}
{{end}}
{{- if .EmitCurry}}
// Curry{{.N}} converts a {{.N}}-argument function into a chain of
// single-argument functions.
{{.CurryFunc}}

// Uncurry{{.N}} is the inverse of Curry{{.N}}.
func Uncurry{{.N}}[{{.AllParams}} any](f {{.CurryType}}) {{.FuncType}} {
	return func({{.ParamDecl}}) R { return f{{range .Fields}}({{.Arg}}){{end}} }
}
{{end}}
{{- if .EmitPartial}}
// Partial{{.N}} pre-binds the first argument of a {{.N}}-argument function,
// leaving a {{.RestN}}-argument function.
func Partial{{.N}}[{{.AllParams}} any](f {{.FuncType}}, {{.First.Arg}} {{.First.TypeParam}}) {{.RestFuncType}} {
	return func({{.RestParamDecl}}) R { return f({{.Args}}) }
}
{{end}}
{{- if .EmitTupled}}
// Tupled{{.N}} converts a {{.N}}-argument function into one taking a single {{.Tuple}}.
func Tupled{{.N}}[{{.AllParams}} any](f {{.FuncType}}) func({{.Tuple}}[{{.TypeParams}}]) R {
	return func(t {{.Tuple}}[{{.TypeParams}}]) R { return f({{.FieldArgs}}) }
}

// Untupled{{.N}} is the inverse of Tupled{{.N}}.
func Untupled{{.N}}[{{.AllParams}} any](f func({{.Tuple}}[{{.TypeParams}}]) R) {{.FuncType}} {
	return func({{.ParamDecl}}) R { return f({{.Tuple}}[{{.TypeParams}}]{{"{"}}{{.LiteralArgs}}}) }
}
{{end}}
{{- end}}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
