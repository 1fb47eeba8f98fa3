package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(index int) g.Node {
	return pageSection("hero", index, "hero",
		Div(
			Class("container hero-inner"),
			Div(Class("hero-badge"), Icon("lucide:flame", "")),
			H1(
				Class("hero-title"),
				lines("AI로 만드는", "나만의 패션 배틀"),
			),
			P(
				Class("hero-lead"),
				lines("인플루언서에게 AI로 옷을 입혀 패션을 완성하고", "실시간 투표로 최고의 스타일을 가리세요"),
			),
			Div(
				Class("hero-actions"),
				A(
					Href("#reserve"),
					Class("btn btn-primary btn-lg"),
					g.Text("사전예약하기"),
					Icon("lucide:arrow-right", ""),
				),
			),
		),
	)
}

func About(index int, cards []Card) g.Node {
	return pageSection("about", index, "about",
		Div(
			Class("container"),
			sectionHeading("서비스 소개", "한 번도 본 적 없었던 패션 배틀 플랫폼",
				"오늘 꽤 신경 쓴 패션, 아무도 몰라줄 때. 패션왕은 그런 패피들의 답답함을 해소하기 위해 등장했습니다."),
			cardGrid(cards),
		),
	)
}

func Features(index int, cards []Card) g.Node {
	return pageSection("features", index, "features",
		Div(
			Class("container"),
			sectionHeading("주요 기능", "스타일링부터 배틀까지, 한 곳에서", ""),
			cardGrid(cards),
		),
	)
}

func Battle(index int) g.Node {
	return pageSection("battle", index, "battle",
		Div(
			Class("container split"),
			Div(
				P(Class("eyebrow"), g.Text("배틀")),
				H2(lines("내 패션력,", "패션왕에서", "드디어 증명하다")),
			),
			Div(
				P(Class("lead"), lines(
					"패션왕이 마련한 다양한 패션 배틀 카테고리에서",
					"패피들의 모든 코디를 공개하여",
					"유저들의 투표와 함께 검증을 받을 수 있도록 합니다.",
				)),
				Ol(
					Class("steps"),
					Li(g.Text("인플루언서를 고르고 AI로 코디를 완성합니다.")),
					Li(g.Text("같은 카테고리의 상대와 실시간으로 매칭됩니다.")),
					Li(g.Text("유저 투표로 승자가 결정됩니다.")),
				),
			),
		),
	)
}

func Ranking(index int) g.Node {
	return pageSection("ranking", index, "ranking",
		Div(
			Class("container split"),
			Div(
				P(Class("eyebrow"), g.Text("랭킹 시스템")),
				H2(lines("패션 랭킹 관리로,", "내 감각에", "왈가왈부 금지")),
			),
			Div(
				P(Class("lead"), lines(
					"패션왕은 시즌제 형식의 계층 기반 시스템으로",
					"경쟁 형식을 채택함으로써 유저의 명성을 조성합니다.",
					"이젠 티어로 여러분의 감각을 자랑해 보세요.",
				)),
				Ul(
					Class("tiers"),
					Li(Icon("lucide:crown", ""), g.Text("패션왕")),
					Li(Icon("lucide:gem", ""), g.Text("다이아몬드")),
					Li(Icon("lucide:medal", ""), g.Text("골드")),
					Li(Icon("lucide:shirt", ""), g.Text("루키")),
				),
			),
		),
	)
}

func PageFooter(version string) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			Div(
				Logo(),
				P(Class("footer-note"), g.Text("콘텐츠 제휴, 마케팅, 사업 및 투자 관련 문의")),
				A(Href("mailto:contact@fashionking.app"), Class("btn btn-ghost btn-sm"), g.Text("문의하기")),
			),
			P(
				Class("footer-copy"),
				g.Text("© 2026 FASHIONKING. All rights reserved."),
				g.If(version != "", Span(Class("footer-version"), g.Text(" v"+version))),
			),
		),
	)
}
