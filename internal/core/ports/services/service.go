package services

// StoreObserverSvc lets consumers register for change notifications. Callbacks
// run synchronously after a successful mutation, once persistence completed.
type StoreObserverSvc interface {
	Subscribe(fn func())
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Ledger      LedgerSvc
	Reporting   ReportingSvc
	Export      ExportSvc
}
