package model

import (
	"fmt"
	"time"
)

// SeedPayload mirrors the navigation payload that reseeds a workspace when the
// operator drills into a service option.
type SeedPayload struct {
	CategoryID   int64
	ServiceID    int64
	ServiceTitle string
	OptionID     int64
	OptionTitle  string
	BaseRoute    string
	Items        []Order
}

// SeedOrders returns the default 12-order collection a fresh workspace starts
// with. IDs are assigned sequentially from 1.
func SeedOrders() []Order {
	orders := []Order{
		{Number: "#0031", Title: "Oxygen Concentrator Rental", DeviceName: "Respira O2-Flow 5L", FDANumber: "FDA-2025-0131", DeviceType: "Respiratory", ApprovalNumber: "APR-9301", Date: "2025-06-02", Country: "Saudi Arabia", Region: "Riyadh Province", City: "Riyadh", Status: StatusPending},
		{Number: "#0032", Title: "Electric Hospital Bed Rental", DeviceName: "MediRest Pro 3000", FDANumber: "FDA-2025-0132", DeviceType: "Patient Care", ApprovalNumber: "APR-9302", Date: "2025-06-03", Country: "Saudi Arabia", Region: "Makkah Province", City: "Jeddah", Status: StatusApproved},
		{Number: "#0033", Title: "Portable Ventilator Rental", DeviceName: "AirLife VT-200", FDANumber: "FDA-2025-0133", DeviceType: "Respiratory", ApprovalNumber: "APR-9303", Date: "2025-06-05", Country: "Saudi Arabia", Region: "Riyadh Province", City: "Riyadh", Status: StatusPending},
		{Number: "#0034", Title: "Wheelchair Rental", DeviceName: "MobilityPlus W450", FDANumber: "FDA-2025-0134", DeviceType: "Mobility", ApprovalNumber: "APR-9304", Date: "2025-06-07", Country: "Saudi Arabia", Region: "Eastern Province", City: "Dammam", Status: StatusRejected},
		{Number: "#0035", Title: "CPAP Machine Rental", DeviceName: "DreamEase CP-10", FDANumber: "FDA-2025-0135", DeviceType: "Respiratory", ApprovalNumber: "APR-9305", Date: "2025-06-09", Country: "Saudi Arabia", Region: "Makkah Province", City: "Makkah", Status: StatusPublished},
		{Number: "#0038", Title: "Patient Lift Rental", DeviceName: "SafeLift SL-300", FDANumber: "FDA-2025-0138", DeviceType: "Patient Care", ApprovalNumber: "APR-9308", Date: "2025-06-11", Country: "Saudi Arabia", Region: "Madinah Province", City: "Madinah", Status: StatusPublished},
		{Number: "#0040", Title: "Infusion Pump Rental", DeviceName: "FlowMed IP-700", FDANumber: "FDA-2025-0140", DeviceType: "Clinical", ApprovalNumber: "APR-9310", Date: "2025-06-12", Country: "Saudi Arabia", Region: "Riyadh Province", City: "Al Kharj", Status: StatusApproved},
		{Number: "#0041", Title: "Nebulizer Rental", DeviceName: "MistCare NB-50", FDANumber: "FDA-2025-0141", DeviceType: "Respiratory", ApprovalNumber: "APR-9311", Date: "2025-06-14", Country: "Saudi Arabia", Region: "Eastern Province", City: "Al Khobar", Status: StatusRejected},
		{Number: "#0043", Title: "Mobility Scooter Rental", DeviceName: "GlideGo S2", FDANumber: "FDA-2025-0143", DeviceType: "Mobility", ApprovalNumber: "APR-9313", Date: "2025-06-16", Country: "Saudi Arabia", Region: "Asir Province", City: "Abha", Status: StatusPublished},
		{Number: "#0045", Title: "Pulse Oximeter Rental", DeviceName: "VitalCheck OX-2", FDANumber: "FDA-2025-0145", DeviceType: "Monitoring", ApprovalNumber: "APR-9315", Date: "2025-06-18", Country: "Saudi Arabia", Region: "Makkah Province", City: "Taif", Status: StatusApproved},
		{Number: "#0046", Title: "Hospital Recliner Rental", DeviceName: "ComfortCare R90", FDANumber: "FDA-2025-0146", DeviceType: "Patient Care", ApprovalNumber: "APR-9316", Date: "2025-06-19", Country: "Saudi Arabia", Region: "Riyadh Province", City: "Riyadh", Status: StatusPending},
		{Number: "#0047", Title: "Suction Machine Rental", DeviceName: "ClearAir SM-120", FDANumber: "FDA-2025-0147", DeviceType: "Clinical", ApprovalNumber: "APR-9317", Date: "2025-06-20", Country: "Saudi Arabia", Region: "Madinah Province", City: "Yanbu", Status: StatusPublished},
	}
	return ReassignIDs(orders)
}

// SeedNotifications returns the static feed entries every workspace starts
// with, newest first.
func SeedNotifications() []Notification {
	return []Notification{
		{ID: "seed-1", OrderNumber: "#0027", OrderTitle: "Hospital Bed Rental", Status: StatusPublished, Timestamp: time.Date(2025, time.May, 28, 14, 10, 0, 0, time.UTC)},
		{ID: "seed-2", OrderNumber: "#0024", OrderTitle: "Oxygen Cylinder Rental", Status: StatusApproved, Timestamp: time.Date(2025, time.May, 26, 9, 45, 0, 0, time.UTC)},
		{ID: "seed-3", OrderNumber: "#0021", OrderTitle: "Walker Rental", Status: StatusRejected, Timestamp: time.Date(2025, time.May, 22, 16, 30, 0, 0, time.UTC), Reason: "Device certification expired."},
	}
}

// Fallback display data for a detail view reached without a matching order.
const (
	fallbackTitle      = "Rental Equipment Order"
	fallbackDevice     = "Medical Device"
	fallbackFDANumber  = "FDA-0000-0000"
	fallbackDeviceType = "General"
	fallbackApproval   = "APR-0000"
	fallbackDate       = "2025-01-01"
	fallbackCountry    = "Saudi Arabia"
	fallbackRegion     = "Riyadh Province"
	fallbackCity       = "Riyadh"
)

// BuildDetail projects an order into its detail view with the standard
// gallery, specification list, and supplier contact.
func BuildDetail(order Order) OrderDetail {
	return OrderDetail{
		Order: order,
		Gallery: []string{
			"/assets/rentals/device-front.jpg",
			"/assets/rentals/device-side.jpg",
			"/assets/rentals/device-panel.jpg",
			"/assets/rentals/device-package.jpg",
		},
		Specs: []DetailField{
			{Label: "Device Name", Value: order.DeviceName},
			{Label: "FDA Number", Value: order.FDANumber},
			{Label: "Device Type", Value: order.DeviceType},
			{Label: "Approval Number", Value: order.ApprovalNumber},
			{Label: "Order Date", Value: order.Date},
			{Label: "Location", Value: fmt.Sprintf("%s, %s, %s", order.City, order.Region, order.Country)},
		},
		Contact: Contact{
			Name:  "Salwa Rental Desk",
			Phone: "+966 11 000 0000",
			Email: "rentals@salwa.health",
		},
	}
}

// FallbackDetail synthesizes a detail view from a bare route ID, used when the
// page is opened directly and no matching order exists.
func FallbackDetail(orderID int64) OrderDetail {
	order := Order{
		ID:             orderID,
		Number:         fmt.Sprintf("#%04d", orderID),
		Title:          fallbackTitle,
		DeviceName:     fallbackDevice,
		FDANumber:      fallbackFDANumber,
		DeviceType:     fallbackDeviceType,
		ApprovalNumber: fallbackApproval,
		Date:           fallbackDate,
		Country:        fallbackCountry,
		Region:         fallbackRegion,
		City:           fallbackCity,
		Status:         StatusPending,
	}
	return BuildDetail(order)
}
