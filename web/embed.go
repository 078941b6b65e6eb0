package web

import "embed"

// StaticFS 嵌入的页面
//
//go:embed *.html
var StaticFS embed.FS
