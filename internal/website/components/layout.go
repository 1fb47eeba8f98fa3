package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	URL         string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "FASHIONKING 패션왕 - AI로 만드는 나만의 패션 배틀"
	}

	if config.Description == "" {
		config.Description = "인플루언서에게 AI로 옷을 입혀 패션을 완성하고 실시간 투표로 최고의 스타일을 가리세요."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("ko"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.URL != "", Link(Rel("canonical"), Href(config.URL))),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),

				Script(Src("/wasm/wasm_exec.js"), Defer()),
				Script(Src("/static/js/boot.js"), Defer()),
			),
		),
	})
}
