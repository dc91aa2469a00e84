package core

import (
	"context"

	"instabug_bridge/contract"
)

// SetUserAttribute attaches key=value to the user. Both must be non-empty.
func (s *Service) SetUserAttribute(key, value string) error {
	if key == "" {
		return &ParamError{Op: string(contract.SetUserAttributeMethod), Param: "key"}
	}
	if value == "" {
		return &ParamError{Op: string(contract.SetUserAttributeMethod), Param: "value"}
	}
	s.call(contract.SetUserAttributeMethod, key, value)
	return nil
}

func (s *Service) RemoveUserAttribute(key string) error {
	if key == "" {
		return &ParamError{Op: string(contract.RemoveUserAttributeMethod), Param: "key"}
	}
	s.call(contract.RemoveUserAttributeMethod, key)
	return nil
}

func (s *Service) ClearAllUserAttributes() {
	s.call(contract.ClearAllUserAttributesMethod)
}

// UserAttribute returns the value stored for key, or "" when unset.
func (s *Service) UserAttribute(ctx context.Context, key string) (string, error) {
	var value string
	err := s.request(ctx, contract.InstabugModule, contract.GetUserAttributeMethod, &value, key)
	return value, err
}

func (s *Service) UserAttributes(ctx context.Context) (map[string]string, error) {
	attrs := map[string]string{}
	err := s.request(ctx, contract.InstabugModule, contract.GetAllUserAttributesMethod, &attrs)
	return attrs, err
}

func (s *Service) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	err := s.request(ctx, contract.InstabugModule, contract.GetTagsMethod, &tags)
	return tags, err
}

// RunningLive reports whether the app is a store build. iOS only.
func (s *Service) RunningLive(ctx context.Context) (bool, error) {
	if s.platform != contract.PlatformIOS {
		return false, ErrUnsupported
	}
	var live bool
	err := s.request(ctx, contract.InstabugModule, contract.IsRunningLiveMethod, &live)
	return live, err
}

// GetTags delivers the tags to fn on the loop.
func (s *Service) GetTags(fn func(tags []string, err error)) {
	go func() {
		tags, err := s.Tags(context.Background())
		s.loop.Post(func() { fn(tags, err) })
	}()
}

func (s *Service) GetUserAttribute(key string, fn func(value string, err error)) {
	go func() {
		value, err := s.UserAttribute(context.Background(), key)
		s.loop.Post(func() { fn(value, err) })
	}()
}

func (s *Service) GetAllUserAttributes(fn func(attrs map[string]string, err error)) {
	go func() {
		attrs, err := s.UserAttributes(context.Background())
		s.loop.Post(func() { fn(attrs, err) })
	}()
}

// IsRunningLive delivers the result to fn on the loop. On Android fn is
// never called.
func (s *Service) IsRunningLive(fn func(live bool, err error)) {
	if s.platform != contract.PlatformIOS {
		return
	}
	go func() {
		live, err := s.RunningLive(context.Background())
		s.loop.Post(func() { fn(live, err) })
	}()
}
