package syntax

import (
	"testing"

	m "github.com/mouse-blink/tally/internal/model"
)

func TestJavaScript_IsCommentLine(t *testing.T) {
	syn := JavaScript{}

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"line comment", "// note", true},
		{"block open", "/* block", true},
		{"block one line", "/* one line */", true},
		{"terminator only", " */", true},
		{"code", "const x = 1;", false},
		{"code with trailing comment", "const x = 1; // note", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := syn.IsCommentLine(tt.line); got != tt.want {
				t.Errorf("IsCommentLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestJavaScript_ClassifyCodeLine(t *testing.T) {
	syn := JavaScript{}

	tests := []struct {
		line string
		want m.Category
	}{
		{"import React from 'react';", m.CategoryImport},
		{"import { useState } from 'react';", m.CategoryImport},
		{"export { render } from './render';", m.CategoryImport},
		{"const fs = require('fs');", m.CategoryImport},
		{"class Widget extends Component {", m.CategoryClassDecl},
		{"export default class App {", m.CategoryClassDecl},
		{"function add(a, b) {", m.CategoryFunctionDecl},
		{"export async function load() {", m.CategoryFunctionDecl},
		{"const double = (n) => n * 2;", m.CategoryFunctionDecl},
		{"const handler = async (event) => {", m.CategoryFunctionDecl},
		{"render() {", m.CategoryMethodDecl},
		{"async fetchData() {", m.CategoryMethodDecl},
		{"if (ready) {", m.CategoryControlFlow},
		{"switch (kind) {", m.CategoryControlFlow},
		{"return total;", m.CategoryReturn},
		{"const total = 0;", m.CategoryVariableDecl},
		{"let index = 0;", m.CategoryVariableDecl},
		{"var legacy;", m.CategoryVariableDecl},
		{"total = total + 1;", m.CategoryAssignment},
		{"count += step;", m.CategoryAssignment},
		{"console.log(total);", m.CategoryFunctionCall},
		{"render(root);", m.CategoryFunctionCall},
		{"}", m.CategoryOtherCode},
		{"console.log(x); // trace", m.CategoryFunctionCall},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := syn.ClassifyCodeLine(tt.line); got != tt.want {
				t.Errorf("ClassifyCodeLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestJavaScript_Extensions(t *testing.T) {
	syn := JavaScript{}

	extensions := syn.Extensions()
	want := map[string]bool{".js": false, ".jsx": false, ".ts": false, ".tsx": false}

	for _, ext := range extensions {
		if _, ok := want[ext]; !ok {
			t.Errorf("unexpected extension %q", ext)
			continue
		}

		want[ext] = true
	}

	for ext, seen := range want {
		if !seen {
			t.Errorf("missing extension %q", ext)
		}
	}
}
