package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	Entry     EntrySvcFacade
	Concept   ConceptSvcFacade
	Goal      GoalSvcFacade
	Stats     StatsSvcFacade
	Milestone MilestoneSvcFacade
	Tip       TipSvcFacade
}
