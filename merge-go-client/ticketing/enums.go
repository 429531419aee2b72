// Copyright (c) 2024 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ticketing

import (
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

var (
	TicketStatusOpen       = record.EnumMember{Name: "open", Wire: "OPEN"}
	TicketStatusClosed     = record.EnumMember{Name: "closed", Wire: "CLOSED"}
	TicketStatusInProgress = record.EnumMember{Name: "in_progress", Wire: "IN_PROGRESS"}
	TicketStatusOnHold     = record.EnumMember{Name: "on_hold", Wire: "ON_HOLD"}

	// TicketStatusEnum is the status of a Ticket.
	TicketStatusEnum = record.NewEnumSet("TicketStatusEnum",
		TicketStatusOpen, TicketStatusClosed, TicketStatusInProgress, TicketStatusOnHold)
)

var (
	PriorityUrgent = record.EnumMember{Name: "urgent", Wire: "URGENT"}
	PriorityHigh   = record.EnumMember{Name: "high", Wire: "HIGH"}
	PriorityNormal = record.EnumMember{Name: "normal", Wire: "NORMAL"}
	PriorityLow    = record.EnumMember{Name: "low", Wire: "LOW"}

	PriorityEnum = record.NewEnumSet("PriorityEnum", PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow)
)
