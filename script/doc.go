// Package script runs YAML scene scripts against an fbdraw.Engine.
//
// A script is a list of steps. Each step names one engine operation and its
// arguments; steps that produce a canvas bind it to a name with "as":
//
//	steps:
//	  - clear: [0, 0, 0, 1]
//	  - canvas: [0.5, 0.25]
//	    as: panel
//	  - push: panel
//	  - color: "#3366ff"
//	  - box: [0, 0, 1, 1]
//	  - pop
//	  - font: [fonts/DejaVuSans.ttf, 1]
//	  - color: [1, 1, 1, 1]
//	  - text: "Hello, framebuffer"
//	    as: hello
//	  - blit: [0.1, 0.1, panel]
//	  - blit: [0.12, 0.12, hello]
//	  - render: screen
//	  - sleep: 2
//
// The root canvas is predefined as "screen". Steps without arguments may be
// written as a bare name ("pop", "now"). Colours are four numbers in [0, 1]
// or a hex string. Text is UTF-8 in the script and is drawn as ISO 8859-1
// code units.
//
// Parse validates operation names, argument counts and argument types and
// reports problems as *ArgumentError with the line of the offending step.
// Canvas names are resolved when the step runs.
package script
