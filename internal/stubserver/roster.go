package stubserver

import (
	"encoding/json"
	"fmt"
	"os"
)

// Device is an RFID reader and the class it is installed for.
type Device struct {
	DeviceID string `json:"deviceId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Class    string `json:"class"`
}

// Student is a card holder.
type Student struct {
	RFIDID    string `json:"rfidId"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Active    bool   `json:"active"`
}

// Roster lists the devices and students the stub knows about.
type Roster struct {
	Devices  []Device  `json:"devices"`
	Students []Student `json:"students"`
}

// DemoRoster is used when no roster file is given.
func DemoRoster() Roster {
	return Roster{
		Devices: []Device{
			{DeviceID: "gate-1", Name: "Front gate", Location: "Room 101", Class: "10A"},
			{DeviceID: "gate-2", Name: "Lab door", Location: "Lab 2", Class: "10B"},
			{DeviceID: "spare", Name: "Spare reader", Location: "Storage"},
		},
		Students: []Student{
			{RFIDID: "04A2B3C4", StudentID: "S001", Name: "Ada Lovelace", Class: "10A", Active: true},
			{RFIDID: "04D5E6F7", StudentID: "S002", Name: "Alan Turing", Class: "10B", Active: true},
			{RFIDID: "0411AA22", StudentID: "S003", Name: "Grace Hopper", Class: "10A", Active: false},
			{RFIDID: "04FFEE00", StudentID: "S004", Name: "Edsger Dijkstra", Active: true},
		},
	}
}

// LoadRoster reads a roster from a JSON file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster %s: %w", path, err)
	}

	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parse roster %s: %w", path, err)
	}

	return r, nil
}
