package main

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/dcmspec/dcmspec-go/pkg/dictionary"
)

var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

const uidsTmpl = `// Code generated by dcmspec-gen. DO NOT EDIT.
{{- if .Edition}}
// Edition: {{.Edition}}
{{- end}}

package {{.Package}}
{{range .Groups}}
// {{.Title}}
const (
{{- range .Constants}}
{{.Name}} = {{quote .UID}}
{{- end}}
)
{{end}}
// generatedUIDs lists every generated constant in definition order.
var generatedUIDs = []string{
{{- range .Groups}}
{{- range .Constants}}
{{.Name}},
{{- end}}
{{- end}}
}
`

var uidsTemplate = template.Must(template.New("uids").Funcs(funcMap).Parse(uidsTmpl))

type uidsData struct {
	Package string
	Edition string
	Groups  []constGroup
}

type constGroup struct {
	Title     string
	Constants []uidConst
}

type uidConst struct {
	Name string
	UID  string
}

// GenerateUIDs renders the constant declarations for every uid of d,
// grouped into Transfer Syntaxes, SOP Classes and everything else.
func GenerateUIDs(d *dictionary.Dictionary, pkgName string) (string, error) {
	groups := []constGroup{
		{Title: "Transfer Syntax UIDs."},
		{Title: "SOP Class UIDs."},
		{Title: "Other registered UIDs."},
	}

	seen := make(map[string]string)
	for _, e := range d.UIDs().All() {
		name := constName(e.Keyword)
		if name == "UID" {
			return "", fmt.Errorf("uid %s: keyword %q has no identifier characters", e.UID, e.Keyword)
		}
		if prev, dup := seen[name]; dup {
			return "", fmt.Errorf("uid %s: constant %s already used for %s", e.UID, name, prev)
		}
		seen[name] = e.UID

		c := uidConst{Name: name, UID: e.UID}
		switch e.Type {
		case dictionary.TypeTransferSyntax:
			groups[0].Constants = append(groups[0].Constants, c)
		case dictionary.TypeSOPClass:
			groups[1].Constants = append(groups[1].Constants, c)
		default:
			groups[2].Constants = append(groups[2].Constants, c)
		}
	}

	data := uidsData{Package: pkgName, Edition: d.Edition().String()}
	for _, g := range groups {
		if len(g.Constants) > 0 {
			data.Groups = append(data.Groups, g)
		}
	}

	var b strings.Builder
	if err := uidsTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template uids: %w", err)
	}
	return b.String(), nil
}

// constName turns a registry keyword into an exported identifier:
// "dicomDeviceName" -> "UIDDicomDeviceName".
func constName(keyword string) string {
	var b strings.Builder
	b.WriteString("UID")
	first := true
	for _, r := range keyword {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if first {
			r = unicode.ToUpper(r)
			first = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
