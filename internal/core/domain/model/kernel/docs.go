// Package kernel holds the value objects shared by every aggregate of the
// work-order model:
//   - UUID: entity identifier
//   - Date: calendar day in ISO YYYY-MM-DD form, the grouping key of reports
//   - TaskType: the closed set of field job kinds that quotas are counted in
//
// All values are immutable and reject their zero value on Validate.
package kernel
