// Package core provides the business logic for seeding the demo tables.
//
// This package contains the domain logic independent of any storage backend
// or output format. It can be used by the CLI or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Records: [User], [Product] and [Order] values implementing [Record].
//   - Table Definitions: Registered via the registry, each table has field specs,
//     a value binder, a row scanner and a confirmation message.
//   - Service: The main entry point: [Service.Seed], [Service.Dispatch] and
//     [Service.Process].
//   - Pool: Bounded concurrency with per-record [Task] handles.
//
// # Table Registry
//
// Tables are registered at init time using [Register]:
//
//	core.Register(TableDefinition{
//	    Info: TableInfo{Kind: KindUser, Key: "users", Position: 1},
//	    FieldSpecs: []FieldSpec{
//	        {Name: "id", Type: FieldInteger, PrimaryKey: true},
//	        {Name: "name", Type: FieldText},
//	    },
//	    Values:  userValues,
//	    Scan:    scanUser,
//	    Confirm: confirmUser,
//	})
//
// # Seeding
//
// [Service.Seed] submits every record of a [Dataset] (users, then products,
// then orders) to a pool of [Service.Workers] workers. Each worker validates
// its record and, if valid, inserts it into the store for the record's kind.
// Outcomes are collected in submission order regardless of completion order:
//
//	[User ID 1] Success: Inserted user Alice
//	[Product ID 10] Failed: Price cannot be negative
//	[Order ID 3] Error: Database was busy with conflicting operations (Code: DB003)
//
// Failed means the record was rejected (a broken rule or a duplicate ID);
// Error means storage failed for another reason.
//
// # Error Handling
//
// Technical errors are mapped to short descriptions using [MapError].
// Each error category has a unique code for support reference:
//
//   - DB001-DB007: Database errors (duplicates, locks, connections, types)
//   - TBL001: Table missing
//   - RUN001-RUN002: Run cancelled or past its deadline
//   - ERR000: Anything else
package core
