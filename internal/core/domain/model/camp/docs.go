// Package camp contains the Camp aggregate. A camp is a collection drive run
// by an organization: couriers deliver donations to it and the organization's
// operators confirm them there. Camps deactivate permanently when completed.
package camp
