package http

import "encoding/json"

type createReq struct {
	AmplifyApp string          `json:"amplifyApp"`
	Subdomain  string          `json:"subdomain"`
	Name       string          `json:"name"`
	Content    json.RawMessage `json:"content"`
}
