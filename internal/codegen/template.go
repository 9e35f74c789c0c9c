package codegen

import (
	"io"
	"text/template"

	_ "github.com/go-bindata/go-bindata"

	"github.com/bend-n/raad-codegen/internal/codegen/internal"
)

//go:generate go run github.com/go-bindata/go-bindata/go-bindata -o=internal/bindata.go -pkg=internal -modtime=1 ./templates/...

type fileInfo struct {
	Header          []string
	BuildConstraint string
	Package         string
	Imports         []importInfo
	Bodies          []string
}

type importInfo struct {
	Name string
	Path string
}

func generateTemplate(info *fileInfo, writer io.Writer) error {
	templateFile := internal.MustAsset("templates/file.tmpl")
	temp, err := template.New("file").Parse(string(templateFile))
	if err != nil {
		return err
	}
	return temp.Execute(writer, info)
}
