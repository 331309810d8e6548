package dto

// OrderSeed is one injected order in a workspace seed payload. IDs are
// reassigned server-side, so none is accepted here.
type OrderSeed struct {
	OrderNo        string `json:"orderNo"`
	OrderTitle     string `json:"orderTitle"`
	DeviceName     string `json:"deviceName"`
	FDANumber      string `json:"fdaNumber"`
	DeviceType     string `json:"deviceType"`
	ApprovalNumber string `json:"approvalNumber"`
	Date           string `json:"date"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	City           string `json:"city"`
	Status         string `json:"status"`
}

// WorkspaceSeedRequest mirrors the navigation payload that reseeds the list
// view when the operator drills into a service option.
type WorkspaceSeedRequest struct {
	CategoryID   int64       `json:"categoryId"`
	ServiceID    int64       `json:"serviceId"`
	ServiceTitle string      `json:"serviceTitle"`
	OptionID     int64       `json:"optionId"`
	OptionTitle  string      `json:"optionTitle"`
	BaseRoute    string      `json:"baseRoute"`
	Items        []OrderSeed `json:"items"`
}
