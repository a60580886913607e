// Package main - 图床列表
package main

import (
	"strings"

	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// handleHostingsCommand 以表格列出所有图床及所需的环境变量
func handleHostingsCommand(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"图床", "必需的环境变量"})
	table.SetAutoWrapText(false)

	for _, name := range imgbed.Hostings() {
		env := strings.Join(imgbed.RequiredEnv(name), ", ")
		if env == "" {
			env = "-"
		}
		table.Append([]string{name, env})
	}
	table.Render()
	return nil
}
