// Package organization contains the Organization aggregate for the NGOs that
// run collection camps. The operator relationship defined here gates who may
// confirm deliveries and complete camps.
package organization
