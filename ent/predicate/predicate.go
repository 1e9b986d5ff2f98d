// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// AssignmentRule is the predicate function for assignmentrule builders.
type AssignmentRule func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadStatusHistory is the predicate function for leadstatushistory builders.
type LeadStatusHistory func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WhatsAppTrigger is the predicate function for whatsapptrigger builders.
type WhatsAppTrigger func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)

// WorkspaceMember is the predicate function for workspacemember builders.
type WorkspaceMember func(*sql.Selector)
