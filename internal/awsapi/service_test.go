package awsapi

import "testing"

func TestServiceMetadata(t *testing.T) {
	t.Run("ContentType", func(t *testing.T) {
		tests := []struct {
			name string
			md   *ServiceMetadata
			want string
		}{{
			name: "awsJson1_0",
			md:   &ServiceMetadata{Protocol: ProtocolJSON, JSONVersion: "1.0"},
			want: "application/x-amz-json-1.0",
		}, {
			name: "awsJson1_1",
			md:   &ServiceMetadata{Protocol: ProtocolJSON, JSONVersion: "1.1"},
			want: "application/x-amz-json-1.1",
		}, {
			name: "awsQuery",
			md:   &ServiceMetadata{Protocol: ProtocolQuery},
			want: "application/x-www-form-urlencoded",
		}, {
			name: "ec2Query",
			md:   &ServiceMetadata{Protocol: ProtocolEC2Query},
			want: "application/x-www-form-urlencoded",
		}, {
			name: "restXml",
			md:   &ServiceMetadata{Protocol: ProtocolRESTXML},
			want: "application/xml",
		}, {
			name: "restJson1",
			md:   &ServiceMetadata{Protocol: ProtocolRESTJSON},
			want: "application/json",
		}}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := tt.md.ContentType(); got != tt.want {
					t.Fatal("expected", tt.want, "got", got)
				}
			})
		}
	})

	t.Run("Target", func(t *testing.T) {
		md := &ServiceMetadata{TargetPrefix: "CodeDeploy_20141006"}
		if got := md.Target("GetDeploymentConfig"); got != "CodeDeploy_20141006.GetDeploymentConfig" {
			t.Fatal("unexpected target", got)
		}
	})
}

func TestResultMetadata(t *testing.T) {
	var md ResultMetadata
	var setter RequestIDSetter = &md
	setter.SetRequestID("abc")
	if md.RequestID != "abc" {
		t.Fatal("unexpected request id", md.RequestID)
	}
}

func TestTargetHeader(t *testing.T) {
	md := &ServiceMetadata{TargetPrefix: "QLDBSession"}
	headers := md.TargetHeader("SendCommand")
	if v := headers.Get("X-Amz-Target"); v != "QLDBSession.SendCommand" {
		t.Fatal("unexpected header", v)
	}
}
