// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: compliance/v1/compliance.proto

package compliancepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalyzeDocumentRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	LoanId       string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	Filename     string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentText string                 `protobuf:"bytes,3,opt,name=document_text,json=documentText,proto3" json:"document_text,omitempty"`
	Pages        int32                  `protobuf:"varint,4,opt,name=pages,proto3" json:"pages,omitempty"`
	// use the deterministic sample extractor instead of the LLM
	UseSample     bool `protobuf:"varint,5,opt,name=use_sample,json=useSample,proto3" json:"use_sample,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentRequest) Reset() {
	*x = AnalyzeDocumentRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentRequest) ProtoMessage() {}

func (x *AnalyzeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeDocumentRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

func (x *AnalyzeDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *AnalyzeDocumentRequest) GetDocumentText() string {
	if x != nil {
		return x.DocumentText
	}
	return ""
}

func (x *AnalyzeDocumentRequest) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *AnalyzeDocumentRequest) GetUseSample() bool {
	if x != nil {
		return x.UseSample
	}
	return false
}

type AnalyzeDocumentResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Profile         *LoanProfile           `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	ComplianceScore int32                  `protobuf:"varint,2,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AnalyzeDocumentResponse) Reset() {
	*x = AnalyzeDocumentResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentResponse) ProtoMessage() {}

func (x *AnalyzeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeDocumentResponse) GetProfile() *LoanProfile {
	if x != nil {
		return x.Profile
	}
	return nil
}

func (x *AnalyzeDocumentResponse) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

type GetLoanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLoanRequest) Reset() {
	*x = GetLoanRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoanRequest) ProtoMessage() {}

func (x *GetLoanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoanRequest.ProtoReflect.Descriptor instead.
func (*GetLoanRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{2}
}

func (x *GetLoanRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

type GetLoanResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Profile         *LoanProfile           `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	ComplianceScore int32                  `protobuf:"varint,2,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetLoanResponse) Reset() {
	*x = GetLoanResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoanResponse) ProtoMessage() {}

func (x *GetLoanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoanResponse.ProtoReflect.Descriptor instead.
func (*GetLoanResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{3}
}

func (x *GetLoanResponse) GetProfile() *LoanProfile {
	if x != nil {
		return x.Profile
	}
	return nil
}

func (x *GetLoanResponse) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

type ListLoansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLoansRequest) Reset() {
	*x = ListLoansRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLoansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLoansRequest) ProtoMessage() {}

func (x *ListLoansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLoansRequest.ProtoReflect.Descriptor instead.
func (*ListLoansRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{4}
}

type ListLoansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Loans         []*LoanSummary         `protobuf:"bytes,1,rep,name=loans,proto3" json:"loans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLoansResponse) Reset() {
	*x = ListLoansResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLoansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLoansResponse) ProtoMessage() {}

func (x *ListLoansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLoansResponse.ProtoReflect.Descriptor instead.
func (*ListLoansResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{5}
}

func (x *ListLoansResponse) GetLoans() []*LoanSummary {
	if x != nil {
		return x.Loans
	}
	return nil
}

type DeleteLoanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLoanRequest) Reset() {
	*x = DeleteLoanRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLoanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLoanRequest) ProtoMessage() {}

func (x *DeleteLoanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLoanRequest.ProtoReflect.Descriptor instead.
func (*DeleteLoanRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteLoanRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

type UpdateRequirementStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	RequirementId string                 `protobuf:"bytes,2,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateRequirementStatusRequest) Reset() {
	*x = UpdateRequirementStatusRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRequirementStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRequirementStatusRequest) ProtoMessage() {}

func (x *UpdateRequirementStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRequirementStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateRequirementStatusRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateRequirementStatusRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

func (x *UpdateRequirementStatusRequest) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *UpdateRequirementStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateRequirementStatusRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type UpdateRequirementStatusResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RequirementId   string                 `protobuf:"bytes,1,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	OldStatus       string                 `protobuf:"bytes,2,opt,name=old_status,json=oldStatus,proto3" json:"old_status,omitempty"`
	NewStatus       string                 `protobuf:"bytes,3,opt,name=new_status,json=newStatus,proto3" json:"new_status,omitempty"`
	ComplianceScore int32                  `protobuf:"varint,4,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateRequirementStatusResponse) Reset() {
	*x = UpdateRequirementStatusResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateRequirementStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateRequirementStatusResponse) ProtoMessage() {}

func (x *UpdateRequirementStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateRequirementStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateRequirementStatusResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateRequirementStatusResponse) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *UpdateRequirementStatusResponse) GetOldStatus() string {
	if x != nil {
		return x.OldStatus
	}
	return ""
}

func (x *UpdateRequirementStatusResponse) GetNewStatus() string {
	if x != nil {
		return x.NewStatus
	}
	return ""
}

func (x *UpdateRequirementStatusResponse) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

type RecordComplianceEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	RequirementId string                 `protobuf:"bytes,2,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	EventType     string                 `protobuf:"bytes,3,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	SubmittedBy   *string                `protobuf:"bytes,5,opt,name=submitted_by,json=submittedBy,proto3,oneof" json:"submitted_by,omitempty"`
	Documents     []string               `protobuf:"bytes,6,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordComplianceEventRequest) Reset() {
	*x = RecordComplianceEventRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordComplianceEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordComplianceEventRequest) ProtoMessage() {}

func (x *RecordComplianceEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordComplianceEventRequest.ProtoReflect.Descriptor instead.
func (*RecordComplianceEventRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{9}
}

func (x *RecordComplianceEventRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

func (x *RecordComplianceEventRequest) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *RecordComplianceEventRequest) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *RecordComplianceEventRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *RecordComplianceEventRequest) GetSubmittedBy() string {
	if x != nil && x.SubmittedBy != nil {
		return *x.SubmittedBy
	}
	return ""
}

func (x *RecordComplianceEventRequest) GetDocuments() []string {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetComplianceSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetComplianceSummaryRequest) Reset() {
	*x = GetComplianceSummaryRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetComplianceSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetComplianceSummaryRequest) ProtoMessage() {}

func (x *GetComplianceSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetComplianceSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetComplianceSummaryRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{10}
}

func (x *GetComplianceSummaryRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

type GetComplianceSummaryResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	TotalRequirements int32                  `protobuf:"varint,1,opt,name=total_requirements,json=totalRequirements,proto3" json:"total_requirements,omitempty"`
	CriticalItems     int32                  `protobuf:"varint,2,opt,name=critical_items,json=criticalItems,proto3" json:"critical_items,omitempty"`
	NonCompliantCount int32                  `protobuf:"varint,3,opt,name=non_compliant_count,json=nonCompliantCount,proto3" json:"non_compliant_count,omitempty"`
	AtRiskCount       int32                  `protobuf:"varint,4,opt,name=at_risk_count,json=atRiskCount,proto3" json:"at_risk_count,omitempty"`
	ComplianceScore   int32                  `protobuf:"varint,5,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	ByStatus          map[string]int32       `protobuf:"bytes,6,rep,name=by_status,json=byStatus,proto3" json:"by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByCategory        map[string]int32       `protobuf:"bytes,7,rep,name=by_category,json=byCategory,proto3" json:"by_category,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetComplianceSummaryResponse) Reset() {
	*x = GetComplianceSummaryResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetComplianceSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetComplianceSummaryResponse) ProtoMessage() {}

func (x *GetComplianceSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetComplianceSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetComplianceSummaryResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{11}
}

func (x *GetComplianceSummaryResponse) GetTotalRequirements() int32 {
	if x != nil {
		return x.TotalRequirements
	}
	return 0
}

func (x *GetComplianceSummaryResponse) GetCriticalItems() int32 {
	if x != nil {
		return x.CriticalItems
	}
	return 0
}

func (x *GetComplianceSummaryResponse) GetNonCompliantCount() int32 {
	if x != nil {
		return x.NonCompliantCount
	}
	return 0
}

func (x *GetComplianceSummaryResponse) GetAtRiskCount() int32 {
	if x != nil {
		return x.AtRiskCount
	}
	return 0
}

func (x *GetComplianceSummaryResponse) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

func (x *GetComplianceSummaryResponse) GetByStatus() map[string]int32 {
	if x != nil {
		return x.ByStatus
	}
	return nil
}

func (x *GetComplianceSummaryResponse) GetByCategory() map[string]int32 {
	if x != nil {
		return x.ByCategory
	}
	return nil
}

type ExportChecklistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoanId        string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportChecklistRequest) Reset() {
	*x = ExportChecklistRequest{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportChecklistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportChecklistRequest) ProtoMessage() {}

func (x *ExportChecklistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportChecklistRequest.ProtoReflect.Descriptor instead.
func (*ExportChecklistRequest) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{12}
}

func (x *ExportChecklistRequest) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

type ExportChecklistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportChecklistResponse) Reset() {
	*x = ExportChecklistResponse{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportChecklistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportChecklistResponse) ProtoMessage() {}

func (x *ExportChecklistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportChecklistResponse.ProtoReflect.Descriptor instead.
func (*ExportChecklistResponse) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{13}
}

func (x *ExportChecklistResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportChecklistResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type LoanProfile struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	LoanId             string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	LoanName           string                 `protobuf:"bytes,2,opt,name=loan_name,json=loanName,proto3" json:"loan_name,omitempty"`
	PropertyName       string                 `protobuf:"bytes,3,opt,name=property_name,json=propertyName,proto3" json:"property_name,omitempty"`
	BorrowerName       string                 `protobuf:"bytes,4,opt,name=borrower_name,json=borrowerName,proto3" json:"borrower_name,omitempty"`
	LenderName         string                 `protobuf:"bytes,5,opt,name=lender_name,json=lenderName,proto3" json:"lender_name,omitempty"`
	OriginalLoanAmount float64                `protobuf:"fixed64,6,opt,name=original_loan_amount,json=originalLoanAmount,proto3" json:"original_loan_amount,omitempty"`
	CurrentBalance     *float64               `protobuf:"fixed64,7,opt,name=current_balance,json=currentBalance,proto3,oneof" json:"current_balance,omitempty"`
	OriginationDate    *string                `protobuf:"bytes,8,opt,name=origination_date,json=originationDate,proto3,oneof" json:"origination_date,omitempty"`
	MaturityDate       *string                `protobuf:"bytes,9,opt,name=maturity_date,json=maturityDate,proto3,oneof" json:"maturity_date,omitempty"`
	Requirements       []*Requirement         `protobuf:"bytes,10,rep,name=requirements,proto3" json:"requirements,omitempty"`
	Events             []*ComplianceEvent     `protobuf:"bytes,11,rep,name=events,proto3" json:"events,omitempty"`
	SourceDocuments    []string               `protobuf:"bytes,12,rep,name=source_documents,json=sourceDocuments,proto3" json:"source_documents,omitempty"`
	ExtractionDate     string                 `protobuf:"bytes,13,opt,name=extraction_date,json=extractionDate,proto3" json:"extraction_date,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *LoanProfile) Reset() {
	*x = LoanProfile{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoanProfile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoanProfile) ProtoMessage() {}

func (x *LoanProfile) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoanProfile.ProtoReflect.Descriptor instead.
func (*LoanProfile) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{14}
}

func (x *LoanProfile) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

func (x *LoanProfile) GetLoanName() string {
	if x != nil {
		return x.LoanName
	}
	return ""
}

func (x *LoanProfile) GetPropertyName() string {
	if x != nil {
		return x.PropertyName
	}
	return ""
}

func (x *LoanProfile) GetBorrowerName() string {
	if x != nil {
		return x.BorrowerName
	}
	return ""
}

func (x *LoanProfile) GetLenderName() string {
	if x != nil {
		return x.LenderName
	}
	return ""
}

func (x *LoanProfile) GetOriginalLoanAmount() float64 {
	if x != nil {
		return x.OriginalLoanAmount
	}
	return 0
}

func (x *LoanProfile) GetCurrentBalance() float64 {
	if x != nil && x.CurrentBalance != nil {
		return *x.CurrentBalance
	}
	return 0
}

func (x *LoanProfile) GetOriginationDate() string {
	if x != nil && x.OriginationDate != nil {
		return *x.OriginationDate
	}
	return ""
}

func (x *LoanProfile) GetMaturityDate() string {
	if x != nil && x.MaturityDate != nil {
		return *x.MaturityDate
	}
	return ""
}

func (x *LoanProfile) GetRequirements() []*Requirement {
	if x != nil {
		return x.Requirements
	}
	return nil
}

func (x *LoanProfile) GetEvents() []*ComplianceEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *LoanProfile) GetSourceDocuments() []string {
	if x != nil {
		return x.SourceDocuments
	}
	return nil
}

func (x *LoanProfile) GetExtractionDate() string {
	if x != nil {
		return x.ExtractionDate
	}
	return ""
}

type LoanSummary struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	LoanId           string                 `protobuf:"bytes,1,opt,name=loan_id,json=loanId,proto3" json:"loan_id,omitempty"`
	LoanName         string                 `protobuf:"bytes,2,opt,name=loan_name,json=loanName,proto3" json:"loan_name,omitempty"`
	PropertyName     string                 `protobuf:"bytes,3,opt,name=property_name,json=propertyName,proto3" json:"property_name,omitempty"`
	BorrowerName     string                 `protobuf:"bytes,4,opt,name=borrower_name,json=borrowerName,proto3" json:"borrower_name,omitempty"`
	LenderName       string                 `protobuf:"bytes,5,opt,name=lender_name,json=lenderName,proto3" json:"lender_name,omitempty"`
	ComplianceScore  int32                  `protobuf:"varint,6,opt,name=compliance_score,json=complianceScore,proto3" json:"compliance_score,omitempty"`
	RequirementCount int32                  `protobuf:"varint,7,opt,name=requirement_count,json=requirementCount,proto3" json:"requirement_count,omitempty"`
	ExtractionDate   string                 `protobuf:"bytes,8,opt,name=extraction_date,json=extractionDate,proto3" json:"extraction_date,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *LoanSummary) Reset() {
	*x = LoanSummary{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoanSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoanSummary) ProtoMessage() {}

func (x *LoanSummary) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoanSummary.ProtoReflect.Descriptor instead.
func (*LoanSummary) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{15}
}

func (x *LoanSummary) GetLoanId() string {
	if x != nil {
		return x.LoanId
	}
	return ""
}

func (x *LoanSummary) GetLoanName() string {
	if x != nil {
		return x.LoanName
	}
	return ""
}

func (x *LoanSummary) GetPropertyName() string {
	if x != nil {
		return x.PropertyName
	}
	return ""
}

func (x *LoanSummary) GetBorrowerName() string {
	if x != nil {
		return x.BorrowerName
	}
	return ""
}

func (x *LoanSummary) GetLenderName() string {
	if x != nil {
		return x.LenderName
	}
	return ""
}

func (x *LoanSummary) GetComplianceScore() int32 {
	if x != nil {
		return x.ComplianceScore
	}
	return 0
}

func (x *LoanSummary) GetRequirementCount() int32 {
	if x != nil {
		return x.RequirementCount
	}
	return 0
}

func (x *LoanSummary) GetExtractionDate() string {
	if x != nil {
		return x.ExtractionDate
	}
	return ""
}

type Requirement struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title                string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Category             string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Description          string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	PlainLanguageSummary string                 `protobuf:"bytes,5,opt,name=plain_language_summary,json=plainLanguageSummary,proto3" json:"plain_language_summary,omitempty"`
	OriginalText         string                 `protobuf:"bytes,6,opt,name=original_text,json=originalText,proto3" json:"original_text,omitempty"`
	DocumentReference    string                 `protobuf:"bytes,7,opt,name=document_reference,json=documentReference,proto3" json:"document_reference,omitempty"`
	Deadline             *Deadline              `protobuf:"bytes,8,opt,name=deadline,proto3" json:"deadline,omitempty"`
	Threshold            *Threshold             `protobuf:"bytes,9,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Severity             string                 `protobuf:"bytes,10,opt,name=severity,proto3" json:"severity,omitempty"`
	CurePeriodDays       *int32                 `protobuf:"varint,11,opt,name=cure_period_days,json=curePeriodDays,proto3,oneof" json:"cure_period_days,omitempty"`
	Status               string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	LastChecked          *string                `protobuf:"bytes,13,opt,name=last_checked,json=lastChecked,proto3,oneof" json:"last_checked,omitempty"`
	Notes                string                 `protobuf:"bytes,14,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Requirement) Reset() {
	*x = Requirement{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Requirement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Requirement) ProtoMessage() {}

func (x *Requirement) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Requirement.ProtoReflect.Descriptor instead.
func (*Requirement) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{16}
}

func (x *Requirement) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Requirement) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Requirement) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Requirement) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Requirement) GetPlainLanguageSummary() string {
	if x != nil {
		return x.PlainLanguageSummary
	}
	return ""
}

func (x *Requirement) GetOriginalText() string {
	if x != nil {
		return x.OriginalText
	}
	return ""
}

func (x *Requirement) GetDocumentReference() string {
	if x != nil {
		return x.DocumentReference
	}
	return ""
}

func (x *Requirement) GetDeadline() *Deadline {
	if x != nil {
		return x.Deadline
	}
	return nil
}

func (x *Requirement) GetThreshold() *Threshold {
	if x != nil {
		return x.Threshold
	}
	return nil
}

func (x *Requirement) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Requirement) GetCurePeriodDays() int32 {
	if x != nil && x.CurePeriodDays != nil {
		return *x.CurePeriodDays
	}
	return 0
}

func (x *Requirement) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Requirement) GetLastChecked() string {
	if x != nil && x.LastChecked != nil {
		return *x.LastChecked
	}
	return ""
}

func (x *Requirement) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type Deadline struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Description        string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Frequency          string                 `protobuf:"bytes,2,opt,name=frequency,proto3" json:"frequency,omitempty"`
	DaysAfterPeriodEnd *int32                 `protobuf:"varint,3,opt,name=days_after_period_end,json=daysAfterPeriodEnd,proto3,oneof" json:"days_after_period_end,omitempty"`
	DayOfMonth         *int32                 `protobuf:"varint,4,opt,name=day_of_month,json=dayOfMonth,proto3,oneof" json:"day_of_month,omitempty"`
	SpecificDate       *string                `protobuf:"bytes,5,opt,name=specific_date,json=specificDate,proto3,oneof" json:"specific_date,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Deadline) Reset() {
	*x = Deadline{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Deadline) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Deadline) ProtoMessage() {}

func (x *Deadline) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Deadline.ProtoReflect.Descriptor instead.
func (*Deadline) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{17}
}

func (x *Deadline) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Deadline) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *Deadline) GetDaysAfterPeriodEnd() int32 {
	if x != nil && x.DaysAfterPeriodEnd != nil {
		return *x.DaysAfterPeriodEnd
	}
	return 0
}

func (x *Deadline) GetDayOfMonth() int32 {
	if x != nil && x.DayOfMonth != nil {
		return *x.DayOfMonth
	}
	return 0
}

func (x *Deadline) GetSpecificDate() string {
	if x != nil && x.SpecificDate != nil {
		return *x.SpecificDate
	}
	return ""
}

type Threshold struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Metric         string                 `protobuf:"bytes,1,opt,name=metric,proto3" json:"metric,omitempty"`
	Operator       string                 `protobuf:"bytes,2,opt,name=operator,proto3" json:"operator,omitempty"`
	Value          float64                `protobuf:"fixed64,3,opt,name=value,proto3" json:"value,omitempty"`
	SecondaryValue *float64               `protobuf:"fixed64,4,opt,name=secondary_value,json=secondaryValue,proto3,oneof" json:"secondary_value,omitempty"`
	Unit           *string                `protobuf:"bytes,5,opt,name=unit,proto3,oneof" json:"unit,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Threshold) Reset() {
	*x = Threshold{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Threshold) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Threshold) ProtoMessage() {}

func (x *Threshold) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Threshold.ProtoReflect.Descriptor instead.
func (*Threshold) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{18}
}

func (x *Threshold) GetMetric() string {
	if x != nil {
		return x.Metric
	}
	return ""
}

func (x *Threshold) GetOperator() string {
	if x != nil {
		return x.Operator
	}
	return ""
}

func (x *Threshold) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Threshold) GetSecondaryValue() float64 {
	if x != nil && x.SecondaryValue != nil {
		return *x.SecondaryValue
	}
	return 0
}

func (x *Threshold) GetUnit() string {
	if x != nil && x.Unit != nil {
		return *x.Unit
	}
	return ""
}

type ComplianceEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequirementId string                 `protobuf:"bytes,1,opt,name=requirement_id,json=requirementId,proto3" json:"requirement_id,omitempty"`
	EventDate     string                 `protobuf:"bytes,2,opt,name=event_date,json=eventDate,proto3" json:"event_date,omitempty"`
	EventType     string                 `protobuf:"bytes,3,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	SubmittedBy   *string                `protobuf:"bytes,5,opt,name=submitted_by,json=submittedBy,proto3,oneof" json:"submitted_by,omitempty"`
	Documents     []string               `protobuf:"bytes,6,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComplianceEvent) Reset() {
	*x = ComplianceEvent{}
	mi := &file_compliance_v1_compliance_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComplianceEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComplianceEvent) ProtoMessage() {}

func (x *ComplianceEvent) ProtoReflect() protoreflect.Message {
	mi := &file_compliance_v1_compliance_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComplianceEvent.ProtoReflect.Descriptor instead.
func (*ComplianceEvent) Descriptor() ([]byte, []int) {
	return file_compliance_v1_compliance_proto_rawDescGZIP(), []int{19}
}

func (x *ComplianceEvent) GetRequirementId() string {
	if x != nil {
		return x.RequirementId
	}
	return ""
}

func (x *ComplianceEvent) GetEventDate() string {
	if x != nil {
		return x.EventDate
	}
	return ""
}

func (x *ComplianceEvent) GetEventType() string {
	if x != nil {
		return x.EventType
	}
	return ""
}

func (x *ComplianceEvent) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ComplianceEvent) GetSubmittedBy() string {
	if x != nil && x.SubmittedBy != nil {
		return *x.SubmittedBy
	}
	return ""
}

func (x *ComplianceEvent) GetDocuments() []string {
	if x != nil {
		return x.Documents
	}
	return nil
}

var File_compliance_v1_compliance_proto protoreflect.FileDescriptor

const file_compliance_v1_compliance_proto_rawDesc = "" +
	"\n" +
	"\x1ecompliance/v1/compliance.proto\x12\rcompliance.v1\x1a\x1bgoogle/protobuf/empty.proto\"\xa7\x01\n" +
	"\x16AnalyzeDocumentRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rdocument_text\x18\x03 \x01(\tR\fdocumentText\x12\x14\n" +
	"\x05pages\x18\x04 \x01(\x05R\x05pages\x12\x1d\n" +
	"\n" +
	"use_sample\x18\x05 \x01(\bR\tuseSample\"z\n" +
	"\x17AnalyzeDocumentResponse\x124\n" +
	"\aprofile\x18\x01 \x01(\v2\x1a.compliance.v1.LoanProfileR\aprofile\x12)\n" +
	"\x10compliance_score\x18\x02 \x01(\x05R\x0fcomplianceScore\")\n" +
	"\x0eGetLoanRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\"r\n" +
	"\x0fGetLoanResponse\x124\n" +
	"\aprofile\x18\x01 \x01(\v2\x1a.compliance.v1.LoanProfileR\aprofile\x12)\n" +
	"\x10compliance_score\x18\x02 \x01(\x05R\x0fcomplianceScore\"\x12\n" +
	"\x10ListLoansRequest\"E\n" +
	"\x11ListLoansResponse\x120\n" +
	"\x05loans\x18\x01 \x03(\v2\x1a.compliance.v1.LoanSummaryR\x05loans\",\n" +
	"\x11DeleteLoanRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\"\x8e\x01\n" +
	"\x1eUpdateRequirementStatusRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\x12%\n" +
	"\x0erequirement_id\x18\x02 \x01(\tR\rrequirementId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"\xb1\x01\n" +
	"\x1fUpdateRequirementStatusResponse\x12%\n" +
	"\x0erequirement_id\x18\x01 \x01(\tR\rrequirementId\x12\x1d\n" +
	"\n" +
	"old_status\x18\x02 \x01(\tR\toldStatus\x12\x1d\n" +
	"\n" +
	"new_status\x18\x03 \x01(\tR\tnewStatus\x12)\n" +
	"\x10compliance_score\x18\x04 \x01(\x05R\x0fcomplianceScore\"\xf6\x01\n" +
	"\x1cRecordComplianceEventRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\x12%\n" +
	"\x0erequirement_id\x18\x02 \x01(\tR\rrequirementId\x12\x1d\n" +
	"\n" +
	"event_type\x18\x03 \x01(\tR\teventType\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12&\n" +
	"\fsubmitted_by\x18\x05 \x01(\tH\x00R\vsubmittedBy\x88\x01\x01\x12\x1c\n" +
	"\tdocuments\x18\x06 \x03(\tR\tdocumentsB\x0f\n" +
	"\r_submitted_by\"6\n" +
	"\x1bGetComplianceSummaryRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\"\xa5\x04\n" +
	"\x1cGetComplianceSummaryResponse\x12-\n" +
	"\x12total_requirements\x18\x01 \x01(\x05R\x11totalRequirements\x12%\n" +
	"\x0ecritical_items\x18\x02 \x01(\x05R\rcriticalItems\x12.\n" +
	"\x13non_compliant_count\x18\x03 \x01(\x05R\x11nonCompliantCount\x12\"\n" +
	"\rat_risk_count\x18\x04 \x01(\x05R\vatRiskCount\x12)\n" +
	"\x10compliance_score\x18\x05 \x01(\x05R\x0fcomplianceScore\x12V\n" +
	"\tby_status\x18\x06 \x03(\v29.compliance.v1.GetComplianceSummaryResponse.ByStatusEntryR\bbyStatus\x12\\\n" +
	"\vby_category\x18\a \x03(\v2;.compliance.v1.GetComplianceSummaryResponse.ByCategoryEntryR\n" +
	"byCategory\x1a;\n" +
	"\rByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a=\n" +
	"\x0fByCategoryEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"1\n" +
	"\x16ExportChecklistRequest\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\"I\n" +
	"\x17ExportChecklistResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xef\x04\n" +
	"\vLoanProfile\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\x12\x1b\n" +
	"\tloan_name\x18\x02 \x01(\tR\bloanName\x12#\n" +
	"\rproperty_name\x18\x03 \x01(\tR\fpropertyName\x12#\n" +
	"\rborrower_name\x18\x04 \x01(\tR\fborrowerName\x12\x1f\n" +
	"\vlender_name\x18\x05 \x01(\tR\n" +
	"lenderName\x120\n" +
	"\x14original_loan_amount\x18\x06 \x01(\x01R\x12originalLoanAmount\x12,\n" +
	"\x0fcurrent_balance\x18\a \x01(\x01H\x00R\x0ecurrentBalance\x88\x01\x01\x12.\n" +
	"\x10origination_date\x18\b \x01(\tH\x01R\x0foriginationDate\x88\x01\x01\x12(\n" +
	"\rmaturity_date\x18\t \x01(\tH\x02R\fmaturityDate\x88\x01\x01\x12>\n" +
	"\frequirements\x18\n" +
	" \x03(\v2\x1a.compliance.v1.RequirementR\frequirements\x126\n" +
	"\x06events\x18\v \x03(\v2\x1e.compliance.v1.ComplianceEventR\x06events\x12)\n" +
	"\x10source_documents\x18\f \x03(\tR\x0fsourceDocuments\x12'\n" +
	"\x0fextraction_date\x18\r \x01(\tR\x0eextractionDateB\x12\n" +
	"\x10_current_balanceB\x13\n" +
	"\x11_origination_dateB\x10\n" +
	"\x0e_maturity_date\"\xaf\x02\n" +
	"\vLoanSummary\x12\x17\n" +
	"\aloan_id\x18\x01 \x01(\tR\x06loanId\x12\x1b\n" +
	"\tloan_name\x18\x02 \x01(\tR\bloanName\x12#\n" +
	"\rproperty_name\x18\x03 \x01(\tR\fpropertyName\x12#\n" +
	"\rborrower_name\x18\x04 \x01(\tR\fborrowerName\x12\x1f\n" +
	"\vlender_name\x18\x05 \x01(\tR\n" +
	"lenderName\x12)\n" +
	"\x10compliance_score\x18\x06 \x01(\x05R\x0fcomplianceScore\x12+\n" +
	"\x11requirement_count\x18\a \x01(\x05R\x10requirementCount\x12'\n" +
	"\x0fextraction_date\x18\b \x01(\tR\x0eextractionDate\"\xaf\x04\n" +
	"\vRequirement\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x124\n" +
	"\x16plain_language_summary\x18\x05 \x01(\tR\x14plainLanguageSummary\x12#\n" +
	"\roriginal_text\x18\x06 \x01(\tR\foriginalText\x12-\n" +
	"\x12document_reference\x18\a \x01(\tR\x11documentReference\x123\n" +
	"\bdeadline\x18\b \x01(\v2\x17.compliance.v1.DeadlineR\bdeadline\x126\n" +
	"\tthreshold\x18\t \x01(\v2\x18.compliance.v1.ThresholdR\tthreshold\x12\x1a\n" +
	"\bseverity\x18\n" +
	" \x01(\tR\bseverity\x12-\n" +
	"\x10cure_period_days\x18\v \x01(\x05H\x00R\x0ecurePeriodDays\x88\x01\x01\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12&\n" +
	"\flast_checked\x18\r \x01(\tH\x01R\vlastChecked\x88\x01\x01\x12\x14\n" +
	"\x05notes\x18\x0e \x01(\tR\x05notesB\x13\n" +
	"\x11_cure_period_daysB\x0f\n" +
	"\r_last_checked\"\x90\x02\n" +
	"\bDeadline\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1c\n" +
	"\tfrequency\x18\x02 \x01(\tR\tfrequency\x126\n" +
	"\x15days_after_period_end\x18\x03 \x01(\x05H\x00R\x12daysAfterPeriodEnd\x88\x01\x01\x12%\n" +
	"\fday_of_month\x18\x04 \x01(\x05H\x01R\n" +
	"dayOfMonth\x88\x01\x01\x12(\n" +
	"\rspecific_date\x18\x05 \x01(\tH\x02R\fspecificDate\x88\x01\x01B\x18\n" +
	"\x16_days_after_period_endB\x0f\n" +
	"\r_day_of_monthB\x10\n" +
	"\x0e_specific_date\"\xb9\x01\n" +
	"\tThreshold\x12\x16\n" +
	"\x06metric\x18\x01 \x01(\tR\x06metric\x12\x1a\n" +
	"\boperator\x18\x02 \x01(\tR\boperator\x12\x14\n" +
	"\x05value\x18\x03 \x01(\x01R\x05value\x12,\n" +
	"\x0fsecondary_value\x18\x04 \x01(\x01H\x00R\x0esecondaryValue\x88\x01\x01\x12\x17\n" +
	"\x04unit\x18\x05 \x01(\tH\x01R\x04unit\x88\x01\x01B\x12\n" +
	"\x10_secondary_valueB\a\n" +
	"\x05_unit\"\xef\x01\n" +
	"\x0fComplianceEvent\x12%\n" +
	"\x0erequirement_id\x18\x01 \x01(\tR\rrequirementId\x12\x1d\n" +
	"\n" +
	"event_date\x18\x02 \x01(\tR\teventDate\x12\x1d\n" +
	"\n" +
	"event_type\x18\x03 \x01(\tR\teventType\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12&\n" +
	"\fsubmitted_by\x18\x05 \x01(\tH\x00R\vsubmittedBy\x88\x01\x01\x12\x1c\n" +
	"\tdocuments\x18\x06 \x03(\tR\tdocumentsB\x0f\n" +
	"\r_submitted_by2\x82\x06\n" +
	"\x11ComplianceService\x12`\n" +
	"\x0fAnalyzeDocument\x12%.compliance.v1.AnalyzeDocumentRequest\x1a&.compliance.v1.AnalyzeDocumentResponse\x12H\n" +
	"\aGetLoan\x12\x1d.compliance.v1.GetLoanRequest\x1a\x1e.compliance.v1.GetLoanResponse\x12N\n" +
	"\tListLoans\x12\x1f.compliance.v1.ListLoansRequest\x1a .compliance.v1.ListLoansResponse\x12F\n" +
	"\n" +
	"DeleteLoan\x12 .compliance.v1.DeleteLoanRequest\x1a\x16.google.protobuf.Empty\x12x\n" +
	"\x17UpdateRequirementStatus\x12-.compliance.v1.UpdateRequirementStatusRequest\x1a..compliance.v1.UpdateRequirementStatusResponse\x12\\\n" +
	"\x15RecordComplianceEvent\x12+.compliance.v1.RecordComplianceEventRequest\x1a\x16.google.protobuf.Empty\x12o\n" +
	"\x14GetComplianceSummary\x12*.compliance.v1.GetComplianceSummaryRequest\x1a+.compliance.v1.GetComplianceSummaryResponse\x12`\n" +
	"\x0fExportChecklist\x12%.compliance.v1.ExportChecklistRequest\x1a&.compliance.v1.ExportChecklistResponseBEZCgithub.com/loanguard/loanguard/gen/proto/compliance/v1;compliancepbb\x06proto3"

var (
	file_compliance_v1_compliance_proto_rawDescOnce sync.Once
	file_compliance_v1_compliance_proto_rawDescData []byte
)

func file_compliance_v1_compliance_proto_rawDescGZIP() []byte {
	file_compliance_v1_compliance_proto_rawDescOnce.Do(func() {
		file_compliance_v1_compliance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_compliance_v1_compliance_proto_rawDesc), len(file_compliance_v1_compliance_proto_rawDesc)))
	})
	return file_compliance_v1_compliance_proto_rawDescData
}

var file_compliance_v1_compliance_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_compliance_v1_compliance_proto_goTypes = []any{
	(*AnalyzeDocumentRequest)(nil),          // 0: compliance.v1.AnalyzeDocumentRequest
	(*AnalyzeDocumentResponse)(nil),         // 1: compliance.v1.AnalyzeDocumentResponse
	(*GetLoanRequest)(nil),                  // 2: compliance.v1.GetLoanRequest
	(*GetLoanResponse)(nil),                 // 3: compliance.v1.GetLoanResponse
	(*ListLoansRequest)(nil),                // 4: compliance.v1.ListLoansRequest
	(*ListLoansResponse)(nil),               // 5: compliance.v1.ListLoansResponse
	(*DeleteLoanRequest)(nil),               // 6: compliance.v1.DeleteLoanRequest
	(*UpdateRequirementStatusRequest)(nil),  // 7: compliance.v1.UpdateRequirementStatusRequest
	(*UpdateRequirementStatusResponse)(nil), // 8: compliance.v1.UpdateRequirementStatusResponse
	(*RecordComplianceEventRequest)(nil),    // 9: compliance.v1.RecordComplianceEventRequest
	(*GetComplianceSummaryRequest)(nil),     // 10: compliance.v1.GetComplianceSummaryRequest
	(*GetComplianceSummaryResponse)(nil),    // 11: compliance.v1.GetComplianceSummaryResponse
	(*ExportChecklistRequest)(nil),          // 12: compliance.v1.ExportChecklistRequest
	(*ExportChecklistResponse)(nil),         // 13: compliance.v1.ExportChecklistResponse
	(*LoanProfile)(nil),                     // 14: compliance.v1.LoanProfile
	(*LoanSummary)(nil),                     // 15: compliance.v1.LoanSummary
	(*Requirement)(nil),                     // 16: compliance.v1.Requirement
	(*Deadline)(nil),                        // 17: compliance.v1.Deadline
	(*Threshold)(nil),                       // 18: compliance.v1.Threshold
	(*ComplianceEvent)(nil),                 // 19: compliance.v1.ComplianceEvent
	nil,                                     // 20: compliance.v1.GetComplianceSummaryResponse.ByStatusEntry
	nil,                                     // 21: compliance.v1.GetComplianceSummaryResponse.ByCategoryEntry
	(*emptypb.Empty)(nil),                   // 22: google.protobuf.Empty
}
var file_compliance_v1_compliance_proto_depIdxs = []int32{
	14, // 0: compliance.v1.AnalyzeDocumentResponse.profile:type_name -> compliance.v1.LoanProfile
	14, // 1: compliance.v1.GetLoanResponse.profile:type_name -> compliance.v1.LoanProfile
	15, // 2: compliance.v1.ListLoansResponse.loans:type_name -> compliance.v1.LoanSummary
	20, // 3: compliance.v1.GetComplianceSummaryResponse.by_status:type_name -> compliance.v1.GetComplianceSummaryResponse.ByStatusEntry
	21, // 4: compliance.v1.GetComplianceSummaryResponse.by_category:type_name -> compliance.v1.GetComplianceSummaryResponse.ByCategoryEntry
	16, // 5: compliance.v1.LoanProfile.requirements:type_name -> compliance.v1.Requirement
	19, // 6: compliance.v1.LoanProfile.events:type_name -> compliance.v1.ComplianceEvent
	17, // 7: compliance.v1.Requirement.deadline:type_name -> compliance.v1.Deadline
	18, // 8: compliance.v1.Requirement.threshold:type_name -> compliance.v1.Threshold
	0,  // 9: compliance.v1.ComplianceService.AnalyzeDocument:input_type -> compliance.v1.AnalyzeDocumentRequest
	2,  // 10: compliance.v1.ComplianceService.GetLoan:input_type -> compliance.v1.GetLoanRequest
	4,  // 11: compliance.v1.ComplianceService.ListLoans:input_type -> compliance.v1.ListLoansRequest
	6,  // 12: compliance.v1.ComplianceService.DeleteLoan:input_type -> compliance.v1.DeleteLoanRequest
	7,  // 13: compliance.v1.ComplianceService.UpdateRequirementStatus:input_type -> compliance.v1.UpdateRequirementStatusRequest
	9,  // 14: compliance.v1.ComplianceService.RecordComplianceEvent:input_type -> compliance.v1.RecordComplianceEventRequest
	10, // 15: compliance.v1.ComplianceService.GetComplianceSummary:input_type -> compliance.v1.GetComplianceSummaryRequest
	12, // 16: compliance.v1.ComplianceService.ExportChecklist:input_type -> compliance.v1.ExportChecklistRequest
	1,  // 17: compliance.v1.ComplianceService.AnalyzeDocument:output_type -> compliance.v1.AnalyzeDocumentResponse
	3,  // 18: compliance.v1.ComplianceService.GetLoan:output_type -> compliance.v1.GetLoanResponse
	5,  // 19: compliance.v1.ComplianceService.ListLoans:output_type -> compliance.v1.ListLoansResponse
	22, // 20: compliance.v1.ComplianceService.DeleteLoan:output_type -> google.protobuf.Empty
	8,  // 21: compliance.v1.ComplianceService.UpdateRequirementStatus:output_type -> compliance.v1.UpdateRequirementStatusResponse
	22, // 22: compliance.v1.ComplianceService.RecordComplianceEvent:output_type -> google.protobuf.Empty
	11, // 23: compliance.v1.ComplianceService.GetComplianceSummary:output_type -> compliance.v1.GetComplianceSummaryResponse
	13, // 24: compliance.v1.ComplianceService.ExportChecklist:output_type -> compliance.v1.ExportChecklistResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_compliance_v1_compliance_proto_init() }
func file_compliance_v1_compliance_proto_init() {
	if File_compliance_v1_compliance_proto != nil {
		return
	}
	file_compliance_v1_compliance_proto_msgTypes[9].OneofWrappers = []any{}
	file_compliance_v1_compliance_proto_msgTypes[14].OneofWrappers = []any{}
	file_compliance_v1_compliance_proto_msgTypes[16].OneofWrappers = []any{}
	file_compliance_v1_compliance_proto_msgTypes[17].OneofWrappers = []any{}
	file_compliance_v1_compliance_proto_msgTypes[18].OneofWrappers = []any{}
	file_compliance_v1_compliance_proto_msgTypes[19].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_compliance_v1_compliance_proto_rawDesc), len(file_compliance_v1_compliance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_compliance_v1_compliance_proto_goTypes,
		DependencyIndexes: file_compliance_v1_compliance_proto_depIdxs,
		MessageInfos:      file_compliance_v1_compliance_proto_msgTypes,
	}.Build()
	File_compliance_v1_compliance_proto = out.File
	file_compliance_v1_compliance_proto_goTypes = nil
	file_compliance_v1_compliance_proto_depIdxs = nil
}
