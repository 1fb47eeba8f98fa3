package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/comdbstn/fashionking/pkg/prereg"
)

// FormView is what the pre-registration form shows: the entered values and
// the outcome of the last attempt.
type FormView struct {
	Data   prereg.FormData
	Status prereg.SubmitStatus
}

func statusClass(s prereg.SubmitStatus) string {
	switch {
	case s.Message == "":
		return "form-status"
	case s.IsSuccess:
		return "form-status success"
	default:
		return "form-status error"
	}
}

func textField(id, label, inputType, placeholder, value, autocomplete string) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", id), g.Text(label)),
		Input(
			ID(id),
			Name(id),
			Type(inputType),
			Placeholder(placeholder),
			Value(value),
			AutoComplete(autocomplete),
			Required(),
		),
	)
}

// Reserve renders the pre-registration form. It posts to /preregister when
// scripting is unavailable; the browser client submits it to the JSON API.
func Reserve(index int, view FormView) g.Node {
	d := view.Data
	submitLabel := prereg.ButtonLabel(view.Status)

	return pageSection("reserve", index, "reserve",
		Div(
			Class("container narrow"),
			sectionHeading("사전예약", "사전예약 신청",
				"지금 사전예약하시면 출시 후 3개월간 프리미엄 기능을 무료로 이용하실 수 있습니다."),
			Form(
				Class("prereg-form"),
				Method("post"),
				Action("/preregister#reserve"),
				g.Attr("data-prereg-form", ""),
				g.Attr("novalidate", ""),

				textField("name", "이름", "text", "홍길동", d.Name, "name"),
				textField("phone", "전화번호", "tel", "010-0000-0000", d.Phone, "tel"),
				textField("email", "이메일", "email", "example@email.com", d.Email, "email"),

				Div(
					Class("field checkbox"),
					Input(
						ID("agreement"),
						Name("agreement"),
						Type("checkbox"),
						Value("true"),
						g.If(d.AgreementAccepted, Checked()),
					),
					Label(g.Attr("for", "agreement"), g.Text("개인정보 수집 및 이용에 동의합니다.")),
				),

				Button(
					Type("submit"),
					Class("btn btn-primary btn-block"),
					g.Attr("data-submit", ""),
					g.If(view.Status.IsSubmitting, Disabled()),
					g.Text(submitLabel),
				),

				P(
					Class(statusClass(view.Status)),
					g.Attr("data-form-status", ""),
					g.Attr("role", "status"),
					g.Attr("aria-live", "polite"),
					g.Text(view.Status.Message),
				),
			),
		),
	)
}
