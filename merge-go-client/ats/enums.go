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

package ats

import (
	"github.com/merge-api/merge-go-client/merge-go-contract/record"
)

var (
	JobStatusOpen     = record.EnumMember{Name: "open", Wire: "OPEN"}
	JobStatusClosed   = record.EnumMember{Name: "closed", Wire: "CLOSED"}
	JobStatusDraft    = record.EnumMember{Name: "draft", Wire: "DRAFT"}
	JobStatusArchived = record.EnumMember{Name: "archived", Wire: "ARCHIVED"}
	JobStatusPending  = record.EnumMember{Name: "pending", Wire: "PENDING"}

	// JobStatusEnum is the status of a Job.
	JobStatusEnum = record.NewEnumSet("JobStatusEnum",
		JobStatusOpen, JobStatusClosed, JobStatusDraft, JobStatusArchived, JobStatusPending)
)

var (
	JobTypePosting     = record.EnumMember{Name: "posting", Wire: "POSTING"}
	JobTypeRequisition = record.EnumMember{Name: "requisition", Wire: "REQUISITION"}
	JobTypeProfile     = record.EnumMember{Name: "profile", Wire: "PROFILE"}

	JobTypeEnum = record.NewEnumSet("JobTypeEnum", JobTypePosting, JobTypeRequisition, JobTypeProfile)
)

var (
	AttachmentTypeResume      = record.EnumMember{Name: "resume", Wire: "RESUME"}
	AttachmentTypeCoverLetter = record.EnumMember{Name: "cover_letter", Wire: "COVER_LETTER"}
	AttachmentTypeOfferLetter = record.EnumMember{Name: "offer_letter", Wire: "OFFER_LETTER"}
	AttachmentTypeOther       = record.EnumMember{Name: "other", Wire: "OTHER"}

	// AttachmentTypeEnum is the kind of document an Attachment holds.
	AttachmentTypeEnum = record.NewEnumSet("AttachmentTypeEnum",
		AttachmentTypeResume, AttachmentTypeCoverLetter, AttachmentTypeOfferLetter, AttachmentTypeOther)
)
