package writer

import (
	"google.golang.org/protobuf/proto"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// textMessage wraps one free-text line as a single unnamed BytesList feature.
func textMessage(topic writerpb.WriterMessage_Topic, line string) *writerpb.WriterMessage {
	return &writerpb.WriterMessage{
		Topic: topic,
		Feature: []*writerpb.WriterMessage_Feature{{
			Payload: &writerpb.WriterMessage_Feature_BytesList{
				BytesList: &writerpb.WriterMessage_BytesList{Value: [][]byte{[]byte(line)}},
			},
		}},
	}
}

// namesMessage wraps a name vector as a single unnamed BytesList feature,
// one list element per name.
func namesMessage(topic writerpb.WriterMessage_Topic, names []string) *writerpb.WriterMessage {
	value := make([][]byte, len(names))
	for i, name := range names {
		value[i] = []byte(name)
	}
	return &writerpb.WriterMessage{
		Topic: topic,
		Feature: []*writerpb.WriterMessage_Feature{{
			Payload: &writerpb.WriterMessage_Feature_BytesList{
				BytesList: &writerpb.WriterMessage_BytesList{Value: value},
			},
		}},
	}
}

// vectorMessage wraps a whole value vector as a single unnamed DoubleList
// feature, preserving order.
func vectorMessage(topic writerpb.WriterMessage_Topic, values []float64) *writerpb.WriterMessage {
	return &writerpb.WriterMessage{
		Topic: topic,
		Feature: []*writerpb.WriterMessage_Feature{{
			Payload: &writerpb.WriterMessage_Feature_DoubleList{
				DoubleList: &writerpb.WriterMessage_DoubleList{Value: append([]float64(nil), values...)},
			},
		}},
	}
}

// columnsMessage zips header names with values by index: one named feature
// per column, each holding a single-element DoubleList. Callers have already
// checked that the lengths match.
func columnsMessage(topic writerpb.WriterMessage_Topic, header []string, values []float64) *writerpb.WriterMessage {
	features := make([]*writerpb.WriterMessage_Feature, len(header))
	for i, name := range header {
		features[i] = &writerpb.WriterMessage_Feature{
			Name: proto.String(name),
			Payload: &writerpb.WriterMessage_Feature_DoubleList{
				DoubleList: &writerpb.WriterMessage_DoubleList{Value: []float64{values[i]}},
			},
		}
	}
	return &writerpb.WriterMessage{Topic: topic, Feature: features}
}
