package ui

import (
	_ "embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed about.md
var aboutMarkdown []byte

// handleAbout renders the embedded about document
func (s *Server) handleAbout(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML(aboutMarkdown, p, renderer)

	s.renderTemplate(c, "about.html", gin.H{
		"content": template.HTML(body),
	})
}
