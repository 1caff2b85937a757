// Package automation describes the capabilities a desktop mail client must
// expose to have its open item windows scanned, retitled and saved.
//
// The contract is deliberately small so that tests can substitute the
// generated mocks for a real client.
package automation

//go:generate mockgen -destination mock_automation/automation.go . Client,Item
