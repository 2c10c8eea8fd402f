// Package audit provides the append-only scan trail for the production tracking
// system. A ScanRecord is written after every accepted scan; persistence failures
// are logged and never propagate to the scanning workflow.
package audit
