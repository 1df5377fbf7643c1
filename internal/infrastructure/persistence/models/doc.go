// Package models contains the GORM persistence models.
//
// Each model mirrors one domain aggregate or child entity and owns the
// mapping in both directions: ToDomain builds the domain object from a
// loaded row, FromDomain populates the model before a write. Domain
// code never sees these types.
package models
