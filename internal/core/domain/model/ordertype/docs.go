// Package ordertype provides the WorkOrderType aggregate: the template a
// daily work order is created from.
//
// A template declares per task type quotas, the task types it expects and the
// role labels allowed to create orders from it. The sum of its quotas is the
// denominator of every completion percentage computed for its orders, so a
// template with a total quota of zero is refused at creation and on edit.
//
// Deleting a template does not cascade: work orders keep the dangling id and
// readers treat it as "type not found".
package ordertype
