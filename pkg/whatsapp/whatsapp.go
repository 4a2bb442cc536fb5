package whatsapp

import "net/url"

// LinkBuilder assembles wa.me deep links for a fixed recipient number. A deep
// link only opens a messaging client pre-filled with text; no delivery
// confirmation is possible or attempted.
type LinkBuilder struct {
	number string
}

func NewLinkBuilder(number string) LinkBuilder {
	return LinkBuilder{number: number}
}

func (b LinkBuilder) Number() string {
	return b.number
}

// MessageLink returns the deep link carrying a pre-filled message.
func (b LinkBuilder) MessageLink(text string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + b.number,
		RawQuery: url.Values{"text": {text}}.Encode(),
	}
	return u.String()
}

// ContactLink returns the bare conversation link with no pre-filled text.
func (b LinkBuilder) ContactLink() string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + b.number,
	}
	return u.String()
}
