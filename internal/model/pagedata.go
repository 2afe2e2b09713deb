package model

// PageData is what the base layout template sees.
type PageData struct {
	SiteTitle string
	BaseURL   string
	PageURL   string
	QQShare   string
	WechatQR  string
	Params    map[string]interface{}
}
