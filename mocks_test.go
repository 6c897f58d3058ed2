package arraywire

import "github.com/stretchr/testify/mock"

type MockSerializer struct {
	mock.Mock
}

func (m *MockSerializer) SerializeTuple(n int) (SeqSink, error) {
	args := m.Called(n)
	sink := args.Get(0)
	if sink == nil {
		return nil, args.Error(1)
	}
	return sink.(SeqSink), args.Error(1)
}

func (m *MockSerializer) SerializeSeq(n int) (SeqSink, error) {
	args := m.Called(n)
	sink := args.Get(0)
	if sink == nil {
		return nil, args.Error(1)
	}
	return sink.(SeqSink), args.Error(1)
}

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Element(v any) error {
	return m.Called(v).Error(0)
}

func (m *MockSink) End() error {
	return m.Called().Error(0)
}
