package rpc

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/response"
	"google.golang.org/grpc"
)

const (
	PasswordService_Forgot_FullMethodName = "/gophpass.v1.PasswordService/Forgot"
	PasswordService_Reset_FullMethodName  = "/gophpass.v1.PasswordService/Reset"
	PasswordService_Change_FullMethodName = "/gophpass.v1.PasswordService/Change"
	PasswordService_Login_FullMethodName  = "/gophpass.v1.PasswordService/Login"
)

// PasswordServiceServer is the server API for the password service.
type PasswordServiceServer interface {
	Forgot(context.Context, *ForgotPasswordRequest) (*response.Envelope, error)
	Reset(context.Context, *ResetPasswordRequest) (*response.Envelope, error)
	Change(context.Context, *ChangePasswordRequest) (*response.Envelope, error)
	Login(context.Context, *LoginRequest) (*response.Envelope, error)
}

func RegisterPasswordServiceServer(s grpc.ServiceRegistrar, srv PasswordServiceServer) {
	s.RegisterService(&PasswordService_ServiceDesc, srv)
}

func _PasswordService_Forgot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ForgotPasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordServiceServer).Forgot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PasswordService_Forgot_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PasswordServiceServer).Forgot(ctx, req.(*ForgotPasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordService_Reset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetPasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordServiceServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PasswordService_Reset_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PasswordServiceServer).Reset(ctx, req.(*ResetPasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordService_Change_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangePasswordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordServiceServer).Change(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PasswordService_Change_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PasswordServiceServer).Change(ctx, req.(*ChangePasswordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PasswordService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PasswordServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PasswordService_ServiceDesc is the grpc.ServiceDesc for the password service.
var PasswordService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophpass.v1.PasswordService",
	HandlerType: (*PasswordServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Forgot", Handler: _PasswordService_Forgot_Handler},
		{MethodName: "Reset", Handler: _PasswordService_Reset_Handler},
		{MethodName: "Change", Handler: _PasswordService_Change_Handler},
		{MethodName: "Login", Handler: _PasswordService_Login_Handler},
	},
	Streams: []grpc.StreamDesc{},
}

// PasswordServiceClient is the client API for the password service. Calls
// always use the JSON codec.
type PasswordServiceClient interface {
	Forgot(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error)
	Reset(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error)
	Change(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*response.Envelope, error)
}

type passwordServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPasswordServiceClient(cc grpc.ClientConnInterface) PasswordServiceClient {
	return &passwordServiceClient{cc}
}

func (c *passwordServiceClient) invoke(ctx context.Context, method string, in any, out *response.Envelope, opts []grpc.CallOption) (*response.Envelope, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Forgot decodes the envelope result as the reset code (*int64).
func (c *passwordServiceClient) Forgot(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error) {
	return c.invoke(ctx, PasswordService_Forgot_FullMethodName, in, &response.Envelope{Result: new(int64)}, opts)
}

func (c *passwordServiceClient) Reset(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error) {
	return c.invoke(ctx, PasswordService_Reset_FullMethodName, in, &response.Envelope{}, opts)
}

// Change decodes the envelope result as the number of updated rows (*int64).
func (c *passwordServiceClient) Change(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*response.Envelope, error) {
	return c.invoke(ctx, PasswordService_Change_FullMethodName, in, &response.Envelope{Result: new(int64)}, opts)
}

// Login decodes the envelope result as *LoginResult.
func (c *passwordServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*response.Envelope, error) {
	return c.invoke(ctx, PasswordService_Login_FullMethodName, in, &response.Envelope{Result: &LoginResult{}}, opts)
}
