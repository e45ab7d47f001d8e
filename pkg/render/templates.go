package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/skyos/hwinv/pkg/inventory"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"comment": comment,
	"hex32":   func(v uint64) string { return fmt.Sprintf("0x%08X", v) },
}

// templates holds all parsed generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		goConstantsTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// constantsData holds pre-computed rows shared by the header and Go templates.
type constantsData struct {
	Options
	Regions    []regionRow
	Interrupts []irqRow
}

type regionRow struct {
	Const       string
	Base        uint64
	Size        uint64
	HasSize     bool
	Description string
}

type irqRow struct {
	Const       string
	IRQ         uint64
	Description string
}

// buildConstants sorts the inventory and names each constant. nameFn maps
// the sorted device names to constant prefixes.
func buildConstants(inv *inventory.Inventory, opts Options, nameFn func([]string) []string) constantsData {
	regions := inv.SortedRegions()
	irqs := inv.SortedInterrupts()

	regionNames := make([]string, len(regions))
	for i, r := range regions {
		regionNames[i] = r.Name
	}
	irqNames := make([]string, len(irqs))
	for i, irq := range irqs {
		irqNames[i] = irq.Device
	}
	regionConsts := nameFn(regionNames)
	irqConsts := nameFn(irqNames)

	data := constantsData{Options: opts}
	for i, r := range regions {
		data.Regions = append(data.Regions, regionRow{
			Const:       regionConsts[i],
			Base:        r.Base,
			Size:        r.Size,
			HasSize:     r.Name != PrimaryMemory,
			Description: r.Description,
		})
	}
	for i, irq := range irqs {
		data.Interrupts = append(data.Interrupts, irqRow{
			Const:       irqConsts[i],
			IRQ:         irq.IRQ,
			Description: irq.Description,
		})
	}
	return data
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}/*
 * {{comment .Project}} hardware address definitions
 * Generated from device tree analysis
 * Do not edit this file by hand
 */

#ifndef {{.Guard}}
#define {{.Guard}}

#include <stdint.h>

/* Memory layout */
{{range .Regions -}}
#define {{.Const}}_BASE        {{hex32 .Base}}    /* {{comment .Description}} */
{{if .HasSize}}#define {{.Const}}_SIZE        {{hex32 .Size}}    /* {{.Size}} bytes */
{{end}}
{{end -}}
/* Interrupt numbers */
{{range .Interrupts -}}
#define {{.Const}}_IRQ         {{printf "%2d" .IRQ}}                /* {{comment .Description}} */
{{end}}
#endif /* {{.Guard}} */
{{end}}`

const goConstantsTmpl = `{{define "goConstants"}}// Code generated by hwinv{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

// Package {{.GoPackage}} holds {{.Project}} hardware address definitions.
package {{.GoPackage}}

// Memory layout.
const (
{{- range .Regions}}
	{{.Const}}_BASE = {{hex32 .Base}}{{with .Description}} // {{.}}{{end}}
{{- if .HasSize}}
	{{.Const}}_SIZE = {{hex32 .Size}} // {{.Size}} bytes
{{- end}}
{{- end}}
)

// Interrupt numbers.
const (
{{- range .Interrupts}}
	{{.Const}}_IRQ = {{.IRQ}}{{with .Description}} // {{.}}{{end}}
{{- end}}
)
{{end}}`
