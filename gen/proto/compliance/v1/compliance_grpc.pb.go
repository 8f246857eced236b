// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: compliance/v1/compliance.proto

package compliancepb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ComplianceService_AnalyzeDocument_FullMethodName         = "/compliance.v1.ComplianceService/AnalyzeDocument"
	ComplianceService_GetLoan_FullMethodName                 = "/compliance.v1.ComplianceService/GetLoan"
	ComplianceService_ListLoans_FullMethodName               = "/compliance.v1.ComplianceService/ListLoans"
	ComplianceService_DeleteLoan_FullMethodName              = "/compliance.v1.ComplianceService/DeleteLoan"
	ComplianceService_UpdateRequirementStatus_FullMethodName = "/compliance.v1.ComplianceService/UpdateRequirementStatus"
	ComplianceService_RecordComplianceEvent_FullMethodName   = "/compliance.v1.ComplianceService/RecordComplianceEvent"
	ComplianceService_GetComplianceSummary_FullMethodName    = "/compliance.v1.ComplianceService/GetComplianceSummary"
	ComplianceService_ExportChecklist_FullMethodName         = "/compliance.v1.ComplianceService/ExportChecklist"
)

// ComplianceServiceClient is the client API for ComplianceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ComplianceServiceClient interface {
	// AnalyzeDocument extracts requirements from loan document text and
	// persists the resulting profile.
	AnalyzeDocument(ctx context.Context, in *AnalyzeDocumentRequest, opts ...grpc.CallOption) (*AnalyzeDocumentResponse, error)
	GetLoan(ctx context.Context, in *GetLoanRequest, opts ...grpc.CallOption) (*GetLoanResponse, error)
	ListLoans(ctx context.Context, in *ListLoansRequest, opts ...grpc.CallOption) (*ListLoansResponse, error)
	DeleteLoan(ctx context.Context, in *DeleteLoanRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UpdateRequirementStatus(ctx context.Context, in *UpdateRequirementStatusRequest, opts ...grpc.CallOption) (*UpdateRequirementStatusResponse, error)
	// RecordComplianceEvent appends a submission, verification, breach,
	// or cure event to a loan's history.
	RecordComplianceEvent(ctx context.Context, in *RecordComplianceEventRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetComplianceSummary(ctx context.Context, in *GetComplianceSummaryRequest, opts ...grpc.CallOption) (*GetComplianceSummaryResponse, error)
	// ExportChecklist renders the loan's requirements as an XLSX workbook.
	ExportChecklist(ctx context.Context, in *ExportChecklistRequest, opts ...grpc.CallOption) (*ExportChecklistResponse, error)
}

type complianceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewComplianceServiceClient(cc grpc.ClientConnInterface) ComplianceServiceClient {
	return &complianceServiceClient{cc}
}

func (c *complianceServiceClient) AnalyzeDocument(ctx context.Context, in *AnalyzeDocumentRequest, opts ...grpc.CallOption) (*AnalyzeDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeDocumentResponse)
	err := c.cc.Invoke(ctx, ComplianceService_AnalyzeDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) GetLoan(ctx context.Context, in *GetLoanRequest, opts ...grpc.CallOption) (*GetLoanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLoanResponse)
	err := c.cc.Invoke(ctx, ComplianceService_GetLoan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) ListLoans(ctx context.Context, in *ListLoansRequest, opts ...grpc.CallOption) (*ListLoansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLoansResponse)
	err := c.cc.Invoke(ctx, ComplianceService_ListLoans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) DeleteLoan(ctx context.Context, in *DeleteLoanRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, ComplianceService_DeleteLoan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) UpdateRequirementStatus(ctx context.Context, in *UpdateRequirementStatusRequest, opts ...grpc.CallOption) (*UpdateRequirementStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateRequirementStatusResponse)
	err := c.cc.Invoke(ctx, ComplianceService_UpdateRequirementStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) RecordComplianceEvent(ctx context.Context, in *RecordComplianceEventRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, ComplianceService_RecordComplianceEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) GetComplianceSummary(ctx context.Context, in *GetComplianceSummaryRequest, opts ...grpc.CallOption) (*GetComplianceSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetComplianceSummaryResponse)
	err := c.cc.Invoke(ctx, ComplianceService_GetComplianceSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complianceServiceClient) ExportChecklist(ctx context.Context, in *ExportChecklistRequest, opts ...grpc.CallOption) (*ExportChecklistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportChecklistResponse)
	err := c.cc.Invoke(ctx, ComplianceService_ExportChecklist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ComplianceServiceServer is the server API for ComplianceService service.
// All implementations must embed UnimplementedComplianceServiceServer
// for forward compatibility.
type ComplianceServiceServer interface {
	// AnalyzeDocument extracts requirements from loan document text and
	// persists the resulting profile.
	AnalyzeDocument(context.Context, *AnalyzeDocumentRequest) (*AnalyzeDocumentResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	DeleteLoan(context.Context, *DeleteLoanRequest) (*emptypb.Empty, error)
	UpdateRequirementStatus(context.Context, *UpdateRequirementStatusRequest) (*UpdateRequirementStatusResponse, error)
	// RecordComplianceEvent appends a submission, verification, breach,
	// or cure event to a loan's history.
	RecordComplianceEvent(context.Context, *RecordComplianceEventRequest) (*emptypb.Empty, error)
	GetComplianceSummary(context.Context, *GetComplianceSummaryRequest) (*GetComplianceSummaryResponse, error)
	// ExportChecklist renders the loan's requirements as an XLSX workbook.
	ExportChecklist(context.Context, *ExportChecklistRequest) (*ExportChecklistResponse, error)
	mustEmbedUnimplementedComplianceServiceServer()
}

// UnimplementedComplianceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedComplianceServiceServer struct{}

func (UnimplementedComplianceServiceServer) AnalyzeDocument(context.Context, *AnalyzeDocumentRequest) (*AnalyzeDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeDocument not implemented")
}
func (UnimplementedComplianceServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedComplianceServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedComplianceServiceServer) DeleteLoan(context.Context, *DeleteLoanRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLoan not implemented")
}
func (UnimplementedComplianceServiceServer) UpdateRequirementStatus(context.Context, *UpdateRequirementStatusRequest) (*UpdateRequirementStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateRequirementStatus not implemented")
}
func (UnimplementedComplianceServiceServer) RecordComplianceEvent(context.Context, *RecordComplianceEventRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordComplianceEvent not implemented")
}
func (UnimplementedComplianceServiceServer) GetComplianceSummary(context.Context, *GetComplianceSummaryRequest) (*GetComplianceSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetComplianceSummary not implemented")
}
func (UnimplementedComplianceServiceServer) ExportChecklist(context.Context, *ExportChecklistRequest) (*ExportChecklistResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportChecklist not implemented")
}
func (UnimplementedComplianceServiceServer) mustEmbedUnimplementedComplianceServiceServer() {}
func (UnimplementedComplianceServiceServer) testEmbeddedByValue()                           {}

// UnsafeComplianceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ComplianceServiceServer will
// result in compilation errors.
type UnsafeComplianceServiceServer interface {
	mustEmbedUnimplementedComplianceServiceServer()
}

func RegisterComplianceServiceServer(s grpc.ServiceRegistrar, srv ComplianceServiceServer) {
	// If the following call pancis, it indicates UnimplementedComplianceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ComplianceService_ServiceDesc, srv)
}

func _ComplianceService_AnalyzeDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).AnalyzeDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_AnalyzeDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).AnalyzeDocument(ctx, req.(*AnalyzeDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).GetLoan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_GetLoan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).ListLoans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_ListLoans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_DeleteLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).DeleteLoan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_DeleteLoan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).DeleteLoan(ctx, req.(*DeleteLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_UpdateRequirementStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRequirementStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).UpdateRequirementStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_UpdateRequirementStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).UpdateRequirementStatus(ctx, req.(*UpdateRequirementStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_RecordComplianceEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordComplianceEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).RecordComplianceEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_RecordComplianceEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).RecordComplianceEvent(ctx, req.(*RecordComplianceEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_GetComplianceSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetComplianceSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).GetComplianceSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_GetComplianceSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).GetComplianceSummary(ctx, req.(*GetComplianceSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplianceService_ExportChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplianceServiceServer).ExportChecklist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComplianceService_ExportChecklist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplianceServiceServer).ExportChecklist(ctx, req.(*ExportChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ComplianceService_ServiceDesc is the grpc.ServiceDesc for ComplianceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ComplianceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "compliance.v1.ComplianceService",
	HandlerType: (*ComplianceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeDocument",
			Handler:    _ComplianceService_AnalyzeDocument_Handler,
		},
		{
			MethodName: "GetLoan",
			Handler:    _ComplianceService_GetLoan_Handler,
		},
		{
			MethodName: "ListLoans",
			Handler:    _ComplianceService_ListLoans_Handler,
		},
		{
			MethodName: "DeleteLoan",
			Handler:    _ComplianceService_DeleteLoan_Handler,
		},
		{
			MethodName: "UpdateRequirementStatus",
			Handler:    _ComplianceService_UpdateRequirementStatus_Handler,
		},
		{
			MethodName: "RecordComplianceEvent",
			Handler:    _ComplianceService_RecordComplianceEvent_Handler,
		},
		{
			MethodName: "GetComplianceSummary",
			Handler:    _ComplianceService_GetComplianceSummary_Handler,
		},
		{
			MethodName: "ExportChecklist",
			Handler:    _ComplianceService_ExportChecklist_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "compliance/v1/compliance.proto",
}
