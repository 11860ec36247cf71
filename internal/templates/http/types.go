package http

import "encoding/json"

type createReq struct {
	Name        string          `json:"name"`
	AppID       string          `json:"amplifyAppId"`
	Description string          `json:"description"`
	Structure   json.RawMessage `json:"structure"`
}

type updateReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Structure   json.RawMessage `json:"structure"`
}
