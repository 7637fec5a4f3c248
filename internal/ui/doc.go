// package ui holds the lipgloss palette used for prompts and notices.
//
// Styling is applied to whole lines only, so output stays readable (and greppable) when
// lipgloss detects a non-terminal writer and drops the colors.
package ui
