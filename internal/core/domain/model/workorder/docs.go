// Package workorder provides the WorkOrder aggregate and the Task entities
// it owns.
//
// The package includes:
//   - WorkOrder: a day of dispatched work referencing a template and, optionally, a performer
//   - Task: one field visit with an address, a client and a status
//   - TaskStatus: NEW, DONE, REPLACED, CANCELLED, with unrestricted reassignment
//   - Number: the sequential "N-0001" display number
//
// Tasks are added without checking the template's allowed task types or its
// quota; going over quota is a supported case. Completion is measured by the
// domain services against the template's total quota, not against the number
// of tasks present.
package workorder
