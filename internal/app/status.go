package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Render("✔")
	infoMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true).Render("ℹ")
	failureMark = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render("✖")
)

// status prints the one line that ends every run.
type status struct {
	w io.Writer
}

func (s status) success(msg string) { fmt.Fprintln(s.w, successMark, msg) }

func (s status) info(msg string) { fmt.Fprintln(s.w, infoMark, msg) }

func (s status) failure(msg string) { fmt.Fprintln(s.w, failureMark, msg) }
